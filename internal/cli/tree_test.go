package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/usage"
)

func flagNames(node *dispatchers.DispatchNode) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range node.Flags {
		for _, name := range flag.Names {
			names[name] = true
		}
	}
	return names
}

func walk(node *dispatchers.DispatchNode, fn func(*dispatchers.DispatchNode)) {
	fn(node)
	for _, child := range node.Children {
		walk(child, fn)
	}
}

func TestBuildTree_ReturnsRoot(t *testing.T) {
	root := BuildTree()

	require.NotNil(t, root)
	require.Equal(t, "lu", root.Name)
	require.Nil(t, root.Action, "bare lu shows help")
}

func TestBuildTree_HasExpectedTopLevelCommands(t *testing.T) {
	root := BuildTree()

	expectedCommands := []string{
		"home",
		"catalog",
		"product",
		"review",
		"cart",
		"order",
		"events",
		"config",
		"theme",
		"logs",
		"serve",
		"version",
		"completions",
		"help",
	}

	for _, cmd := range expectedCommands {
		_, found := root.Children[cmd]
		require.True(t, found, "expected top-level command '%s' not found", cmd)
	}
	require.Len(t, root.Children, len(expectedCommands))
}

func TestBuildTree_GroupsHaveSubcommands(t *testing.T) {
	root := BuildTree()

	tests := []struct {
		group string
		subs  []string
	}{
		{"catalog", []string{"categories", "seed"}},
		{"product", []string{"show"}},
		{"review", []string{"add", "avg"}},
		{"cart", []string{"add", "remove", "list", "clear"}},
		{"order", []string{"checkout", "list", "show", "status", "statuses"}},
		{"events", []string{"list", "show", "add", "update", "delete"}},
		{"config", []string{"get", "set", "unset", "list"}},
		{"theme", []string{"list", "set", "pick"}},
		{"logs", []string{"tail", "clear"}},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			group, found := root.Children[tt.group]
			require.True(t, found, "group '%s' not found", tt.group)
			require.Len(t, group.Children, len(tt.subs))
			for _, sub := range tt.subs {
				child, found := group.Children[sub]
				require.True(t, found, "expected %s subcommand '%s' not found", tt.group, sub)
				require.NotNil(t, child.Action, "%s %s should have an action", tt.group, sub)
			}
		})
	}
}

func TestBuildTree_GroupsWithDefaultAction(t *testing.T) {
	root := BuildTree()

	// `lu catalog` and `lu logs` run on their own; the rest show help.
	require.NotNil(t, root.Children["catalog"].Action)
	require.NotNil(t, root.Children["logs"].Action)

	for _, name := range []string{"product", "review", "cart", "order", "events", "config", "theme"} {
		require.Nil(t, root.Children[name].Action, "group '%s' should show help by default", name)
	}
}

func TestBuildTree_HelpHasNoAction(t *testing.T) {
	root := BuildTree()

	help, found := root.Children["help"]
	require.True(t, found, "help command not found")
	require.Nil(t, help.Action, "help should not have an action (handled specially)")
}

func TestBuildTree_RootHasFlags(t *testing.T) {
	names := flagNames(BuildTree())

	for _, want := range []string{"--help", "-h", "--version", "--no-color", "--no-pager", "--pager"} {
		require.True(t, names[want], "root should have %s flag", want)
	}
}

func TestBuildTree_CommandFlags(t *testing.T) {
	root := BuildTree()

	tests := []struct {
		path  []string
		flags []string
	}{
		{[]string{"home"}, []string{"--json", "-i", "--interactive"}},
		{[]string{"catalog"}, []string{"--search", "--category", "--json", "-i"}},
		{[]string{"review", "add"}, []string{"--comment"}},
		{[]string{"review", "avg"}, []string{"--watch"}},
		{[]string{"events", "list"}, []string{"--json", "--watch"}},
		{[]string{"events", "add"}, []string{"--title", "--starts", "--location", "--description"}},
		{[]string{"events", "update"}, []string{"--title", "--starts", "--location", "--description"}},
		{[]string{"config", "unset"}, []string{"--all"}},
		{[]string{"logs"}, []string{"--limit", "--json"}},
		{[]string{"serve"}, []string{"--addr"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.path, " "), func(t *testing.T) {
			node := root
			for _, p := range tt.path {
				node = node.Children[p]
				require.NotNil(t, node)
			}
			names := flagNames(node)
			for _, f := range tt.flags {
				require.True(t, names[f], "missing flag %s", f)
			}
		})
	}
}

func TestBuildTree_EveryNodeIsDescribed(t *testing.T) {
	walk(BuildTree(), func(n *dispatchers.DispatchNode) {
		require.NotEmpty(t, n.Summary, "%v should have a summary", n.Path)
		require.NotEmpty(t, n.Usage, "%v should have usage", n.Path)
		require.True(t, strings.HasPrefix(n.Usage, strings.Join(n.Path, " ")), "%v usage %q", n.Path, n.Usage)
	})
}

func TestBuildTree_CommandsAreCategorized(t *testing.T) {
	walk(BuildTree(), func(n *dispatchers.DispatchNode) {
		if len(n.Path) == 1 || n.Name == "help" {
			return
		}
		require.NotEqual(t, dispatchers.CategoryUncategorized, n.Category, "%v has no category", n.Path)
	})
}

func TestDispatch_Tree(t *testing.T) {
	root := BuildTree()

	tests := []struct {
		name     string
		tokens   []string
		flags    []string
		wantNode string
		wantArgs []string
		wantErr  usage.ErrorKind
	}{
		{name: "catalog with filters", tokens: []string{"catalog"}, flags: []string{"--search=cat"}, wantNode: "catalog"},
		{name: "review add", tokens: []string{"review", "add", "JM001", "5"}, wantNode: "add", wantArgs: []string{"JM001", "5"}},
		{name: "order status", tokens: []string{"order", "status", "abc", "shipped"}, wantNode: "status", wantArgs: []string{"abc", "shipped"}},
		{name: "cart add missing code", tokens: []string{"cart", "add"}, wantErr: usage.ErrMissingArgument},
		{name: "review add missing rating", tokens: []string{"review", "add", "JM001"}, wantErr: usage.ErrMissingArgument},
		{name: "unknown subcommand", tokens: []string{"cart", "empty"}, wantErr: usage.ErrUnknownCommand},
		{name: "flag from another command", tokens: []string{"cart", "list"}, flags: []string{"--watch"}, wantErr: usage.ErrInvalidFlag},
		{name: "global flag anywhere", tokens: []string{"cart", "list"}, flags: []string{"--no-color"}, wantNode: "list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := dispatchers.Dispatch(root, tt.tokens, dispatchers.NewParsedFlags(tt.flags))
			if tt.wantErr != 0 {
				var ue *usage.Error
				require.ErrorAs(t, err, &ue)
				require.Equal(t, tt.wantErr, ue.Kind)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantNode, res.Node.Name)
			require.NotNil(t, res.Execute)
			if tt.wantArgs != nil {
				require.Equal(t, tt.wantArgs, res.Args)
			}
		})
	}
}
