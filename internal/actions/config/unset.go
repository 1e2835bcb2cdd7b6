package config

import (
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/usage"
)

func Unset(args []string, flags *dispatchers.ParsedFlags) error {
	return unset(args, flags, DefaultDeps())
}

func unset(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if flags.Has("--all") {
		if len(args) > 0 {
			return usage.InvalidFlag("--all does not take arguments")
		}

		if err := deps.withLock(func() error { return deps.WriteLines([]string{}) }); err != nil {
			return err
		}

		log.Info("config: removed all entries")
		_, _ = deps.Println("all config entries removed")
		return nil
	}

	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]

	var removed bool
	err := deps.withLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, removed = deps.Unset(lines, key)
		if !removed {
			return nil
		}
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}
	if !removed {
		return usage.InvalidConfigKey(key)
	}

	log.Info("config: unset %s", key)
	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
