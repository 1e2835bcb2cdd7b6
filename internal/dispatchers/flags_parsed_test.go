package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsedFlags(t *testing.T) {
	f := NewParsedFlags([]string{"--json", "--limit=10", "--search=", "--limit=20", "--bad=x"})

	require.True(t, f.Has("--json"))
	require.False(t, f.Has("--watch"))
	require.True(t, f.Any("--watch", "--json"))

	v, ok := f.Lookup("--search")
	require.True(t, ok)
	require.Empty(t, v)

	_, ok = f.Lookup("--category")
	require.False(t, ok)

	require.Equal(t, 20, f.Int("--limit", 5))
	require.Equal(t, 5, f.Int("--bad", 5))
	require.Equal(t, 7, f.Int("--missing", 7))
	require.Equal(t, "All", f.String("--category", "All"))
}

func TestParsedFlags_Nil(t *testing.T) {
	var f *ParsedFlags
	require.False(t, f.Has("--json"))
	require.Nil(t, f.Raw())
	require.Equal(t, "x", f.String("--a", "x"))
}
