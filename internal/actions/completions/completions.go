package completions

import (
	"fmt"
	"io"
	"os"

	"github.com/levelupgamer/lu/internal/completions"
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/usage"
)

type Deps struct {
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
	Stdout  io.Writer

	Tree         func() *dispatchers.DispatchNode
	RunningShell func() completions.Shell
}

func DefaultDeps() Deps {
	return Deps{
		Printf:       fmt.Printf,
		Println:      fmt.Println,
		Stdout:       os.Stdout,
		Tree:         completions.GetCommandTree,
		RunningShell: completions.RunningShell,
	}
}

// Completions prints a completion script, or instructions for loading one.
func Completions(args []string, flags *dispatchers.ParsedFlags) error {
	return completionsCmd(args, flags, DefaultDeps())
}

func completionsCmd(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	var shell completions.Shell
	if len(args) > 0 {
		shell = completions.Shell(args[0])
	} else {
		shell = deps.RunningShell()
		if shell == "" {
			return usage.MissingArgument("shell")
		}
	}

	if !shell.Valid() {
		return usage.InvalidValue("shell", string(shell), "use bash, zsh or fish")
	}

	if flags.Has("--script") {
		return completions.PrintCompletions(deps.Stdout, deps.Tree(), shell)
	}

	_, _ = deps.Println("To enable completions, add this line to " + completions.RcFile(shell) + ":")
	_, _ = deps.Println()
	_, _ = deps.Printf("   %s\n", completions.SourceInstructions("lu", shell))
	_, _ = deps.Println()
	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
	return nil
}
