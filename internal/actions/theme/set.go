package theme

import (
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/ui/style"
	"github.com/levelupgamer/lu/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return setTheme(args, flags, DefaultDeps())
}

func setTheme(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("name")
	}

	themeName := args[0]

	// Base names are accepted and stored as given so the variant follows the terminal.
	if _, ok := deps.Themes[themeName]; !ok && !isBaseName(themeName) {
		_, _ = deps.Println("available themes:")
		for _, name := range deps.ThemeNames {
			_, _ = deps.Printf("  %s\n", name)
		}
		return usage.InvalidValue("theme", themeName, "")
	}

	if err := saveTheme(deps, themeName); err != nil {
		return err
	}

	log.Info("theme: set to %s", themeName)
	_, _ = deps.Printf("theme set to %s\n", style.Success(themeName))
	return nil
}

func isBaseName(name string) bool {
	for _, base := range style.BaseThemeNames {
		if base == name {
			return true
		}
	}
	return false
}
