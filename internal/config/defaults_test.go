package config

import (
	"path/filepath"
	"testing"

	"github.com/levelupgamer/lu/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "theme=neon\nfeatured_count=6\n")

	tests := []struct {
		key       string
		want      string
		wantFound bool
	}{
		{key: "theme", want: "neon", wantFound: true},
		{key: "featured_count", want: "6", wantFound: true},
		{key: "max_stars", want: "5", wantFound: true},
		{key: "locale", want: "es-CL", wantFound: true},
		{key: "nope", want: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, found := Get(tt.key)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGet_DBPathDefault(t *testing.T) {
	home := setupTempHome(t)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	writeConfig(t, home, "theme=default\n")

	got, found := Get("db_path")
	require.True(t, found)
	require.Equal(t, "store.db", filepath.Base(got))
}

func TestGetAll(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "low_stock_threshold=2\ncolor_star=214\n")

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "2", all["low_stock_threshold"])
	require.Equal(t, "214", all["color_star"])
	require.Equal(t, "4", all["featured_count"])

	for _, key := range domain.ConfigKeys {
		require.Contains(t, all, key.Name)
	}
}

func TestGetAll_KeepsUnknownUserKeys(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "custom=1\n")

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "1", all["custom"])
}

func TestGetInt(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "featured_count=6\nmax_stars=zero\nlow_stock_threshold=-2\n")

	require.Equal(t, 6, GetInt("featured_count", 4))
	require.Equal(t, 5, GetInt("max_stars", 5))
	require.Equal(t, 5, GetInt("low_stock_threshold", 5))
	require.Equal(t, 9, GetInt("not_a_key", 9))
}
