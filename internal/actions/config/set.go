package config

import (
	"strconv"

	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/usage"
)

// positiveIntKeys must hold a whole number greater than zero.
var positiveIntKeys = map[string]bool{
	"featured_count":      true,
	"max_stars":           true,
	"low_stock_threshold": true,
}

var boolKeys = map[string]bool{
	"enable_log": true,
}

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return set(args, flags, DefaultDeps())
}

func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	value := args[1]

	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	if err := validateValue(key, value); err != nil {
		return err
	}

	var updated bool
	err := deps.withLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, updated = deps.Set(lines, key, value)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	log.Info("config: set %s=%s", key, value)

	action := "added"
	if updated {
		action = "updated"
	}

	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}

func validateValue(key, value string) error {
	switch {
	case positiveIntKeys[key]:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return usage.InvalidValue(key, value, "expected a positive number")
		}
	case boolKeys[key]:
		if value != "true" && value != "false" {
			return usage.InvalidValue(key, value, "expected true or false")
		}
	}
	return nil
}
