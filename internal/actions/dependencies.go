package actions

import (
	"fmt"
	"runtime"

	"github.com/levelupgamer/lu/internal/app"
)

type actionDependencies struct {
	Printf  func(format string, a ...any) (n int, err error)
	Version func() string
	Runtime func() string
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Printf:  fmt.Printf,
		Version: func() string { return app.Version },
		Runtime: func() string { return runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH },
	}
}
