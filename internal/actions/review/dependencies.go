package review

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/levelupgamer/lu/internal/app"
	"github.com/levelupgamer/lu/internal/config"
	"github.com/levelupgamer/lu/internal/domain"
)

type Deps struct {
	OpenStore func() (domain.Store, error)

	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)

	GetInt func(string, int) int

	// WatchContext bounds `review avg --watch`; it ends on interrupt.
	WatchContext func() (context.Context, context.CancelFunc)
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore: app.OpenStore,
		Printf:    fmt.Printf,
		Println:   fmt.Println,
		GetInt:    config.GetInt,
		WatchContext: func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		},
	}
}
