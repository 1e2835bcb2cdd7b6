package theme

import (
	"fmt"

	"github.com/levelupgamer/lu/internal/config"
	"github.com/levelupgamer/lu/internal/ui/style"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	WithLock   func(func() error) error
	Set        func([]string, string, string) ([]string, bool)
	Get        func(string) (string, bool)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	ThemeNames []string
	Themes     map[string]style.ColorConfig
}

func DefaultDeps() Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		WithLock:   config.WithLock,
		Set:        config.Set,
		Get:        config.Get,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		ThemeNames: style.ThemeNames, // All variants (dark/light) explicitly
		Themes:     style.Themes,
	}
}

// currentTheme returns the configured theme with its dark/light suffix resolved.
func currentTheme(deps Deps) string {
	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}
	return style.ResolveThemeName(current)
}

func saveTheme(deps Deps, name string) error {
	write := func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, _ = deps.Set(lines, "theme", name)
		return deps.WriteLines(lines)
	}

	if deps.WithLock == nil {
		return write()
	}
	return deps.WithLock(write)
}
