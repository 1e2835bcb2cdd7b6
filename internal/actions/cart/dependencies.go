package cart

import (
	"fmt"

	"github.com/levelupgamer/lu/internal/app"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
)

type Deps struct {
	OpenStore func() (domain.Store, error)

	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)

	Price func(int64) string
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore: app.OpenStore,
		Printf:    fmt.Printf,
		Println:   fmt.Println,
		Price:     format.Price,
	}
}

func (d Deps) price(amount int64) string {
	if d.Price == nil {
		return fmt.Sprintf("$%d", amount)
	}
	return d.Price(amount)
}
