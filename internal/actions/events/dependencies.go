package events

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/levelupgamer/lu/internal/app"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
)

type Deps struct {
	OpenStore func() (domain.Store, error)

	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)

	FormatTime func(time.Time) string
	Now        func() time.Time

	// WatchContext bounds `events list --watch`; it ends on interrupt.
	WatchContext func() (context.Context, context.CancelFunc)
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore:  app.OpenStore,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		FormatTime: format.DateTime,
		Now:        time.Now,
		WatchContext: func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		},
	}
}

func (d Deps) formatTime(t time.Time) string {
	if d.FormatTime == nil {
		return t.Local().Format("2006-01-02 15:04")
	}
	return d.FormatTime(t)
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}
