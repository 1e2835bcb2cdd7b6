package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var semantic = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
	{"Star", Star},
	{"Price", Price},
	{"Category", Category},
}

func clearColorEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NO_COLOR", "LU_NO_COLOR", "LU_COLOR_THEME", "LU_COLOR_STAR", "LU_COLOR_PRICE"} {
		t.Setenv(key, "")
	}
}

func TestDisabledReturnsPlainText(t *testing.T) {
	clearColorEnv(t)
	Init(false, nil)

	for _, tt := range semantic {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, "test message", tt.fn("test message"))
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	clearColorEnv(t)
	Init(true, map[string]string{"theme": "default-dark"})
	t.Cleanup(func() { Init(false, nil) })

	for _, tt := range semantic {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.fn("test message")
			require.Contains(t, out, "test message")
			require.True(t, strings.Contains(out, "\x1b["), "%s should contain ANSI codes: %q", tt.name, out)
		})
	}
}

func TestNoColorDisables(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("LU_NO_COLOR", "1")

	Init(true, nil)
	require.False(t, Enabled())
	require.Equal(t, "x", Success("x"))
}

func TestLoadColorConfig(t *testing.T) {
	clearColorEnv(t)

	cfg := LoadColorConfig(map[string]string{"theme": "neon-dark"})
	require.Equal(t, Themes["neon-dark"], cfg)

	cfg = LoadColorConfig(map[string]string{"theme": "neon-light", "color_star": "214"})
	require.Equal(t, "214", cfg.Star)
	require.Equal(t, Themes["neon-light"].Price, cfg.Price)

	cfg = LoadColorConfig(map[string]string{"theme": "unknown-dark"})
	require.Equal(t, Themes["default-dark"], cfg)
}

func TestLoadColorConfig_EnvWins(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("LU_COLOR_THEME", "mono-dark")
	t.Setenv("LU_COLOR_PRICE", "99")

	cfg := LoadColorConfig(map[string]string{"theme": "neon-dark", "color_price": "1"})
	require.Equal(t, Themes["mono-dark"].Star, cfg.Star)
	require.Equal(t, "99", cfg.Price)
}

func TestResolveThemeName_Explicit(t *testing.T) {
	require.Equal(t, "neon-light", ResolveThemeName("neon-light"))
	require.Equal(t, "mono-dark", ResolveThemeName("mono-dark"))
}

func TestThemesComplete(t *testing.T) {
	require.Len(t, Themes, len(ThemeNames))
	for _, name := range ThemeNames {
		theme, ok := Themes[name]
		require.True(t, ok, name)
		require.NotEmpty(t, theme.UIActive, name)
		require.NotEmpty(t, theme.UIDim, name)
		require.NotEmpty(t, theme.Star, name)
	}
	for _, base := range BaseThemeNames {
		require.Contains(t, Themes, base+"-dark")
		require.Contains(t, Themes, base+"-light")
	}
}
