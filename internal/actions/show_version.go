package actions

import "github.com/levelupgamer/lu/internal/dispatchers"

func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, flags *dispatchers.ParsedFlags, deps actionDependencies) error {
	if flags.Has("--verbose") {
		_, _ = deps.Printf("lu version %v (%s)\n", deps.Version(), deps.Runtime())
		return nil
	}
	_, _ = deps.Printf("lu version %v\n", deps.Version())
	return nil
}
