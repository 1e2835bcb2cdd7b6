package completions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levelupgamer/lu/internal/dispatchers"
)

func TestGenerateBash(t *testing.T) {
	script := GenerateBash(ExtractCommands(buildTestTree()))

	require.True(t, strings.HasPrefix(script, "# lu bash completion script"))
	for _, want := range []string{
		"_lu_completions()",
		`"lu") words="cart serve --help -h --pager" ;;`,
		`"lu cart") words="add list" ;;`,
		`"lu cart list") words="--json" ;;`,
		"complete -F _lu_completions lu",
	} {
		require.Contains(t, script, want)
	}
	require.NotContains(t, script, `"lu cart add")`, "leaf without flags has no case")
}

func TestGenerateZsh(t *testing.T) {
	script := GenerateZsh(ExtractCommands(buildTestTree()))

	for _, want := range []string{
		"#compdef lu",
		"_lu()",
		"_lu_commands()",
		"_lu_cart_commands()",
		"_describe",
		"'cart:Manage the cart'",
		"'serve:Serve over HTTP'",
		`"lu serve") compadd -- --addr ;;`,
		"compdef _lu lu",
	} {
		require.Contains(t, script, want)
	}
}

func TestGenerateFish(t *testing.T) {
	script := GenerateFish(ExtractCommands(buildTestTree()))

	for _, want := range []string{
		"complete -c lu -f",
		"complete -c lu -n '__fish_use_subcommand' -a 'cart' -d 'Manage the cart'",
		"complete -c lu -n '__fish_seen_subcommand_from cart' -a 'list' -d 'Show the cart'",
		"complete -c lu -l help -s h -d 'Show help'",
		"complete -c lu -l pager -r -d 'Use pager'",
		"complete -c lu -n '__fish_seen_subcommand_from cart; and __fish_seen_subcommand_from list' -l json -d 'Output as JSON'",
	} {
		require.Contains(t, script, want)
	}
}

func TestGenerators_EmptyTree(t *testing.T) {
	commands := ExtractCommands(dispatchers.Root(dispatchers.RootSpec{Name: "lu", Summary: "Test CLI"}))

	require.Contains(t, GenerateBash(commands), "_lu_completions()")
	require.Contains(t, GenerateZsh(commands), "#compdef lu")
	require.Contains(t, GenerateFish(commands), "complete -c lu -f")
}

func TestQuote(t *testing.T) {
	require.Equal(t, `'it'\''s'`, quote("it's"))
}
