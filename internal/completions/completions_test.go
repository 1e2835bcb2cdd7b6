package completions

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levelupgamer/lu/internal/dispatchers"
)

func buildTestTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "lu",
		Summary: "Test CLI",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--pager"}, ValueHint: "<cmd>", Description: "Use pager"},
		},
	})

	cart := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "cart",
		Parent:  root,
		Summary: "Manage the cart",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "list",
		Parent:  cart,
		Summary: "Show the cart",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--json"}, Description: "Output as JSON"},
		},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "add",
		Parent:  cart,
		Summary: "Add a product",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "serve",
		Parent:  root,
		Summary: "Serve over HTTP",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--addr"}, ValueHint: "<host:port>", Description: "Listen address"},
		},
	})

	return root
}

func TestExtractCommands(t *testing.T) {
	commands := ExtractCommands(buildTestTree())
	require.Len(t, commands, 5)

	paths := make([][]string, 0, len(commands))
	for _, c := range commands {
		paths = append(paths, c.Path)
	}
	require.Equal(t, [][]string{
		{"lu"},
		{"lu", "cart"},
		{"lu", "cart", "add"},
		{"lu", "cart", "list"},
		{"lu", "serve"},
	}, paths, "depth-first in name order")

	rootCmd := FindCommand(commands, []string{"lu"})
	require.NotNil(t, rootCmd)
	require.Equal(t, []string{"cart", "serve"}, rootCmd.Subcommands)
	require.True(t, rootCmd.Flags[1].HasValue)
	require.False(t, rootCmd.Flags[0].HasValue)

	list := FindCommand(commands, []string{"lu", "cart", "list"})
	require.NotNil(t, list)
	require.Equal(t, "Show the cart", list.Summary)
	require.Len(t, list.Flags, 1)
}

func TestFindCommand_NotFound(t *testing.T) {
	commands := []CommandInfo{{Name: "lu", Path: []string{"lu"}}}
	require.Nil(t, FindCommand(commands, []string{"lu", "nonexistent"}))
}

func TestShell_Valid(t *testing.T) {
	require.True(t, ShellBash.Valid())
	require.True(t, ShellZsh.Valid())
	require.True(t, ShellFish.Valid())
	require.False(t, Shell("powershell").Valid())
}

func TestRunningShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/local/bin/zsh")
	require.Equal(t, ShellZsh, RunningShell())

	t.Setenv("SHELL", "/bin/tcsh")
	require.Equal(t, Shell(""), RunningShell())
}

func TestPrintCompletions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintCompletions(&buf, buildTestTree(), ShellFish))
	require.Contains(t, buf.String(), "complete -c lu -f")

	require.Error(t, PrintCompletions(&buf, nil, ShellBash))
	require.Error(t, PrintCompletions(&buf, buildTestTree(), Shell("tcsh")))
}

func TestSourceInstructions(t *testing.T) {
	require.Equal(t, `eval "$(lu completions bash --script)"`, SourceInstructions("lu", ShellBash))
	require.Equal(t, "lu completions fish --script | source", SourceInstructions("lu", ShellFish))
	require.Equal(t, "~/.zshrc", RcFile(ShellZsh))
}
