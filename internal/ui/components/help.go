package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/levelupgamer/lu/internal/ui/style"
)

// ThemedHelp is a bubbles help model styled with the active theme.
type ThemedHelp struct {
	help.Model
}

// NewThemedHelp returns a short-help renderer using theme colors.
func NewThemedHelp() ThemedHelp {
	colors := style.GetColors()

	h := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Info)).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.UIDim))

	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	h.ShortSeparator = " │ "

	return ThemedHelp{Model: h}
}
