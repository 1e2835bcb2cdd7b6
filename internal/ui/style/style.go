// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Price, Star, ...) rather than visual
// (RedBold, ...). When disabled, every helper returns its input unchanged with
// no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle  lipgloss.Style
	warningStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	infoStyle     lipgloss.Style
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	starStyle     lipgloss.Style
	priceStyle    lipgloss.Style
	categoryStyle lipgloss.Style
)

// Init sets the enabled state and loads colors from cfg.
// NO_COLOR or LU_NO_COLOR (any non-empty value) disables styling regardless of enable.
// A nil cfg uses the default theme.
//
// Call once from main before any output.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("LU_NO_COLOR") != "" {
		enabled = false
		colors = LoadColorConfig(cfg)
		return
	}

	enabled = enable
	colors = LoadColorConfig(cfg)

	if enabled {
		initStyles(colors)
	}
}

// GetColors returns the current color configuration.
func GetColors() ColorConfig {
	return colors
}

// initStyles uses the ANSI 256 palette regardless of TTY detection.
func initStyles(colors ColorConfig) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	starStyle = makeStyle(colors.Star)
	priceStyle = makeStyle(colors.Price).Bold(true)
	categoryStyle = makeStyle(colors.Category)
}

// makeStyle accepts "bold" or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string { return render(successStyle, text) }

// Warning styles text for warnings, including low stock hints.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(errorStyle, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(infoStyle, text) }

// Header styles section headers and titles.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary information.
func Muted(text string) string { return render(mutedStyle, text) }

// Star styles filled rating stars.
func Star(text string) string { return render(starStyle, text) }

// Price styles amounts.
func Price(text string) string { return render(priceStyle, text) }

// Category styles category names and chips.
func Category(text string) string { return render(categoryStyle, text) }
