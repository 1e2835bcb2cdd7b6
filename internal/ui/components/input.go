package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/levelupgamer/lu/internal/ui/style"
)

// ThemedInput wraps a single-line text input with theme colors.
type ThemedInput struct {
	textinput.Model
}

// NewThemedInput returns an unfocused input showing placeholder when empty.
func NewThemedInput(placeholder string) ThemedInput {
	colors := style.GetColors()

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Info))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))
	ti.CharLimit = 64

	return ThemedInput{Model: ti}
}

// Update forwards msg to the underlying input.
func (i ThemedInput) Update(msg tea.Msg) (ThemedInput, tea.Cmd) {
	var cmd tea.Cmd
	i.Model, cmd = i.Model.Update(msg)
	return i, cmd
}
