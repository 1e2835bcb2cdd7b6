package serve

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/levelupgamer/lu/internal/app"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/server"
	"github.com/levelupgamer/lu/internal/ui/style"
)

// Runner is the part of *server.Server the command drives.
type Runner interface {
	Run(ctx context.Context, cfg server.Config) error
}

type Deps struct {
	NewApp     func() (*domain.Application, error)
	LoadConfig func() (server.Config, error)

	NewServer func(st domain.Store, logOut io.Writer, opts ...server.Option) Runner

	// Context ends the server; the default stops on interrupt.
	Context func() (context.Context, context.CancelFunc)
}

func DefaultDeps() Deps {
	return Deps{
		NewApp: func() (*domain.Application, error) {
			opts := app.DefaultOptions()
			opts.StyleEnabled = style.Enabled()
			opts.PagerDisabled = true
			return app.New(opts)
		},
		LoadConfig: server.LoadConfig,
		NewServer: func(st domain.Store, logOut io.Writer, opts ...server.Option) Runner {
			return server.NewServer(st, logOut, opts...)
		},
		Context: func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		},
	}
}

// accessLog routes gin's request log into the log file when there is one.
func accessLog(l domain.Logger) io.Writer {
	if fl, ok := l.(*log.Logger); ok {
		return fl.Writer(log.LevelInfo)
	}
	return io.Discard
}
