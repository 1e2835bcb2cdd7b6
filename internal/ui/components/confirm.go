package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/levelupgamer/lu/internal/ui/style"
)

// ConfirmResult is sent when the user answers a ThemedConfirm.
type ConfirmResult struct {
	ID        string
	Confirmed bool
}

var (
	confirmYes = key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "confirm"))
	confirmNo  = key.NewBinding(key.WithKeys("n", "N", "esc", "q"), key.WithHelp("n", "cancel"))
)

// ConfirmKeyBindings returns the bindings shown while a dialog is open.
func ConfirmKeyBindings() []key.Binding {
	return []key.Binding{confirmYes, confirmNo}
}

// ThemedConfirm is a yes/no dialog meant to be drawn with bubbletea-overlay.
type ThemedConfirm struct {
	ID      string
	Title   string
	Message string
}

// NewThemedConfirm creates a dialog; id is echoed back in ConfirmResult.
func NewThemedConfirm(id, title, message string) ThemedConfirm {
	return ThemedConfirm{ID: id, Title: title, Message: message}
}

func (c ThemedConfirm) Init() tea.Cmd {
	return nil
}

func (c ThemedConfirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, confirmYes):
		return c, c.answer(true)
	case key.Matches(keyMsg, confirmNo):
		return c, c.answer(false)
	}
	return c, nil
}

func (c ThemedConfirm) answer(confirmed bool) tea.Cmd {
	id := c.ID
	return func() tea.Msg {
		return ConfirmResult{ID: id, Confirmed: confirmed}
	}
}

func (c ThemedConfirm) View() string {
	colors := style.GetColors()

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Warning)).Render(c.Title)
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted)).Render("[y] yes   [n] no")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Warning)).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center, title, "", c.Message, "", hint))
}
