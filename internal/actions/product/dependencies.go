package product

import (
	"fmt"
	"time"

	"github.com/levelupgamer/lu/internal/app"
	"github.com/levelupgamer/lu/internal/config"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
)

type Deps struct {
	OpenStore func() (domain.Store, error)

	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)

	GetInt     func(string, int) int
	Price      func(int64) string
	FormatTime func(time.Time) string
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore:  app.OpenStore,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		GetInt:     config.GetInt,
		Price:      format.Price,
		FormatTime: format.DateTime,
	}
}
