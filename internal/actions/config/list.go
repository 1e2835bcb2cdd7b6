package config

import (
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	header := deps.Header
	if header == nil {
		header = func(s string) string { return s }
	}

	bySection := make(map[string][]domain.ConfigKey)
	for _, key := range domain.VisibleConfigKeys() {
		bySection[key.Section] = append(bySection[key.Section], key)
	}

	first := true
	for _, section := range domain.ConfigSections() {
		var lines []string
		for _, key := range bySection[section] {
			value, exists := configMap[key.Name]
			if !exists || (key.HideIfEmpty && value == "") {
				continue
			}
			lines = append(lines, key.Name+"="+value)
		}
		if len(lines) == 0 {
			continue
		}

		if !first {
			_, _ = deps.Println()
		}
		first = false

		_, _ = deps.Printf("%s\n", header("# "+section))
		for _, line := range lines {
			_, _ = deps.Printf("%s\n", line)
		}
	}

	return nil
}
