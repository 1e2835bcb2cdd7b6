package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values are ANSI color numbers (0-255) or "bold".
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
	Star     string
	Price    string
	Category string
	UIActive string // focused borders, selection
	UIDim    string // unfocused borders, scrollbar track
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"neon",
	"mono",
	"contrast",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"neon-dark", "neon-light",
	"mono-dark", "mono-light",
	"contrast-dark", "contrast-light",
}

// Themes contains the built-in color themes.
// Dark variants use bright colors, light variants dark ones.
var Themes = map[string]ColorConfig{
	// Level-Up brand: electric blue prices, lime green accents.
	"default-dark": {
		Success:  "118", // lime
		Warning:  "220", // gold
		Error:    "203", // soft red
		Info:     "39",  // electric blue
		Muted:    "245",
		Header:   "bold",
		Star:     "220",
		Price:    "39",
		Category: "118",
		UIActive: "39",
		UIDim:    "240",
	},
	"default-light": {
		Success:  "28",
		Warning:  "130",
		Error:    "124",
		Info:     "26",
		Muted:    "243",
		Header:   "bold",
		Star:     "136",
		Price:    "26",
		Category: "28",
		UIActive: "26",
		UIDim:    "250",
	},

	// Neon: saturated arcade colors.
	"neon-dark": {
		Success:  "48",
		Warning:  "226",
		Error:    "197",
		Info:     "51",
		Muted:    "244",
		Header:   "bold",
		Star:     "226",
		Price:    "201",
		Category: "51",
		UIActive: "201",
		UIDim:    "238",
	},
	"neon-light": {
		Success:  "29",
		Warning:  "166",
		Error:    "161",
		Info:     "32",
		Muted:    "245",
		Header:   "bold",
		Star:     "166",
		Price:    "127",
		Category: "32",
		UIActive: "127",
		UIDim:    "252",
	},

	// Mono: grays only, for screenshots and picky terminals.
	"mono-dark": {
		Success:  "255",
		Warning:  "252",
		Error:    "bold",
		Info:     "250",
		Muted:    "242",
		Header:   "bold",
		Star:     "255",
		Price:    "bold",
		Category: "250",
		UIActive: "255",
		UIDim:    "238",
	},
	"mono-light": {
		Success:  "232",
		Warning:  "236",
		Error:    "bold",
		Info:     "238",
		Muted:    "246",
		Header:   "bold",
		Star:     "232",
		Price:    "bold",
		Category: "238",
		UIActive: "232",
		UIDim:    "252",
	},

	// Contrast: basic 16-color palette only.
	"contrast-dark": {
		Success:  "10",
		Warning:  "11",
		Error:    "9",
		Info:     "14",
		Muted:    "7",
		Header:   "bold",
		Star:     "11",
		Price:    "15",
		Category: "14",
		UIActive: "15",
		UIDim:    "8",
	},
	"contrast-light": {
		Success:  "2",
		Warning:  "3",
		Error:    "1",
		Info:     "4",
		Muted:    "8",
		Header:   "bold",
		Star:     "3",
		Price:    "0",
		Category: "4",
		UIActive: "0",
		UIDim:    "7",
	},
}

// colorConfigKeys maps config keys to ColorConfig fields.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_star":    "Star",
	"color_price":   "Price",
}

// IsDarkBackground reports whether the terminal has a dark background.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base name.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig picks the theme and applies per-color overrides.
// Precedence: LU_COLOR_THEME, then the "theme" key; LU_COLOR_<NAME> env
// variables, then color_<name> keys.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := ""

	if envTheme := os.Getenv("LU_COLOR_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	} else {
		themeName = ResolveThemeName("default")
	}

	result, ok := Themes[themeName]
	if !ok {
		result = Themes["default-dark"]
	}

	for configKey, fieldName := range colorConfigKeys {
		envKey := "LU_" + strings.ToUpper(configKey)
		if envVal := os.Getenv(envKey); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Star":
		c.Star = value
	case "Price":
		c.Price = value
	}
}
