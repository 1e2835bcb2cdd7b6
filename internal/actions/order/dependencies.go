package order

import (
	"fmt"
	"time"

	"github.com/levelupgamer/lu/internal/app"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
	"github.com/levelupgamer/lu/internal/ui"
)

type Deps struct {
	OpenStore func() (domain.Store, error)

	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
	Pager   func(string)

	Price      func(int64) string
	FormatTime func(time.Time) string
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore:  app.OpenStore,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		Pager:      ui.NewWriter().Pager,
		Price:      format.Price,
		FormatTime: format.DateTime,
	}
}

func (d Deps) price(amount int64) string {
	if d.Price == nil {
		return fmt.Sprintf("$%d", amount)
	}
	return d.Price(amount)
}

func (d Deps) formatTime(t time.Time) string {
	if d.FormatTime == nil {
		return t.Format(time.DateTime)
	}
	return d.FormatTime(t)
}
