package completions

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levelupgamer/lu/internal/completions"
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/usage"
)

func newTestDeps(shell completions.Shell) (Deps, *strings.Builder) {
	out := &strings.Builder{}
	root := dispatchers.Root(dispatchers.RootSpec{Name: "lu", Summary: "test"})
	dispatchers.Command(dispatchers.CommandSpec{Name: "home", Parent: root, Summary: "Featured products"})

	return Deps{
		Printf:       func(f string, a ...any) (int, error) { return fmt.Fprintf(out, f, a...) },
		Println:      func(a ...any) (int, error) { return fmt.Fprintln(out, a...) },
		Stdout:       out,
		Tree:         func() *dispatchers.DispatchNode { return root },
		RunningShell: func() completions.Shell { return shell },
	}, out
}

func TestCompletions_Script(t *testing.T) {
	deps, out := newTestDeps("")

	err := completionsCmd([]string{"bash"}, dispatchers.NewParsedFlags([]string{"--script"}), deps)
	require.NoError(t, err)
	require.Contains(t, out.String(), "complete -F _lu_completions lu")
	require.Contains(t, out.String(), `words="home"`)
}

func TestCompletions_InstructionsForDetectedShell(t *testing.T) {
	deps, out := newTestDeps(completions.ShellFish)

	err := completionsCmd(nil, dispatchers.NewParsedFlags(nil), deps)
	require.NoError(t, err)
	require.Contains(t, out.String(), "~/.config/fish/config.fish")
	require.Contains(t, out.String(), "lu completions fish --script | source")
}

func TestCompletions_Errors(t *testing.T) {
	deps, _ := newTestDeps("")

	err := completionsCmd(nil, dispatchers.NewParsedFlags(nil), deps)
	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrMissingArgument})

	err = completionsCmd([]string{"powershell"}, dispatchers.NewParsedFlags(nil), deps)
	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrInvalidValue})
}
