package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/levelupgamer/lu/internal/actions"
	"github.com/levelupgamer/lu/internal/app"
	"github.com/levelupgamer/lu/internal/cli"
	"github.com/levelupgamer/lu/internal/completions"
	"github.com/levelupgamer/lu/internal/config"
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/ui"
	"github.com/levelupgamer/lu/internal/ui/style"
	"github.com/levelupgamer/lu/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := cli.BuildTree()
	completions.RegisterCommandTree(root)

	rawFlags, commands := extractFlagsAndCommands(args, root)
	flags := dispatchers.NewParsedFlags(rawFlags)

	// Enable styling if stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	styleConfig, _ := config.GetAll()
	style.Init(enableColor, styleConfig)

	if flags.Has("--no-pager") {
		ui.DisablePager()
	}
	if pager := flags.String("--pager", ""); pager != "" {
		ui.SetPager(pager)
	}

	app.InitLogging()
	defer func() { _ = log.Close() }()

	if len(commands) == 0 && flags.Any("--version", "-v") {
		return exitCode(actions.ShowVersion(nil, flags))
	}

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		return exitCode(err)
	}

	log.Debug("run: %s", strings.Join(res.Node.Path, " "))
	if err := res.Execute(res.Args, res.Flags); err != nil {
		return exitCode(err)
	}

	// Bare `lu` prints help and still fails, like git.
	return res.ExitCode
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, err.Error())

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.ExitCode()
	}
	log.Error("%v", err)
	return 1
}

// valueFlagNames returns every flag in the tree that takes a value.
func valueFlagNames(root *dispatchers.DispatchNode) map[string]bool {
	names := make(map[string]bool)
	var walk func(*dispatchers.DispatchNode)
	walk = func(n *dispatchers.DispatchNode) {
		for _, f := range n.Flags {
			if f.ValueHint == "" {
				continue
			}
			for _, name := range f.Names {
				names[name] = true
			}
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return names
}

// extractFlagsAndCommands splits args into flags and positional tokens.
// A value flag followed by a separate word is joined into --flag=value.
// When the command named so far declares --limit, -n N and -N are
// shorthands for --limit=N; elsewhere -N is a positional token.
func extractFlagsAndCommands(args []string, root *dispatchers.DispatchNode) ([]string, []string) {
	valueFlags := valueFlagNames(root)
	flags := []string{}
	commands := []string{}
	node := root

	for i := 0; i < len(args); i++ {
		a := args[i]

		if a == "" || a[0] != '-' {
			if child, ok := node.Children[a]; ok && len(commands) == len(node.Path)-len(root.Path) {
				node = child
			}
			commands = append(commands, a)
			continue
		}

		if isNumericShorthand(a) {
			if !declaresFlag(node, "--limit") {
				commands = append(commands, a)
				continue
			}
			if n, _ := strconv.Atoi(a[1:]); n > 0 {
				flags = append(flags, "--limit="+strconv.Itoa(n))
				continue
			}
		}

		if a == "-n" && declaresFlag(node, "--limit") {
			if i+1 < len(args) {
				if _, err := strconv.Atoi(args[i+1]); err == nil {
					flags = append(flags, "--limit="+args[i+1])
					i++
					continue
				}
			}
			flags = append(flags, a)
			continue
		}

		if valueFlags[a] && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			flags = append(flags, a+"="+args[i+1])
			i++
			continue
		}

		flags = append(flags, a)
	}

	return flags, commands
}

// isNumericShorthand reports whether a is a dash followed only by digits.
func isNumericShorthand(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	for _, r := range a[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func declaresFlag(node *dispatchers.DispatchNode, name string) bool {
	for _, f := range node.Flags {
		if slices.Contains(f.Names, name) {
			return true
		}
	}
	return false
}
