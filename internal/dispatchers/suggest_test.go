package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"cart", "", 4},
		{"cart", "cart", 0},
		{"cart", "CART", 0},
		{"crat", "cart", 2},
		{"catalgo", "catalog", 2},
		{"order", "orders", 1},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestFindSimilarCommands(t *testing.T) {
	root := createTestTree()

	require.Equal(t, []string{"catalog"}, FindSimilarCommands("catalgo", root, 3))
	require.Empty(t, FindSimilarCommands("zzzzzzzzzz", root, 3))
	require.Nil(t, FindSimilarCommands("x", nil, 3))
}

func TestCollectAllCommands(t *testing.T) {
	root := createTestTree()

	require.Equal(t, []string{
		"cart",
		"cart add",
		"cart list",
		"catalog",
		"catalog categories",
		"version",
	}, CollectAllCommands(root, ""))
}
