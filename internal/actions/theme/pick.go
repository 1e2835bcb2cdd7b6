package theme

import (
	"errors"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/ui/style"
)

func Pick(args []string, flags *dispatchers.ParsedFlags) error {
	return pick(args, flags, DefaultDeps())
}

func pick(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	// Bubble Tea needs a real terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("theme picker requires an interactive terminal")
	}

	current := currentTheme(deps)
	m := newModel(deps.ThemeNames, deps.Themes, current)

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	fm := final.(model)

	switch {
	case fm.chosen == current:
		_, _ = deps.Printf("\nTheme %s is already active\n", style.Info(fm.chosen))
	case fm.chosen != "":
		if err := saveTheme(deps, fm.chosen); err != nil {
			return err
		}
		log.Info("theme: picked %s", fm.chosen)
		_, _ = deps.Printf("\nTheme set to %s\n", style.Success(fm.chosen))
	case fm.cancelled:
		_, _ = deps.Println("\nCancelled")
	}

	return nil
}

type model struct {
	themes    []string
	configs   map[string]style.ColorConfig
	cursor    int
	selected  string
	chosen    string
	cancelled bool
}

func newModel(themes []string, configs map[string]style.ColorConfig, current string) model {
	m := model{themes: themes, configs: configs, selected: current}
	for i, name := range themes {
		if name == current {
			m.cursor = i
			break
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) move(delta int) model {
	n := len(m.themes)
	if n == 0 {
		return m
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		m = m.move(-1)
	case "down", "j":
		m = m.move(1)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.themes)-1, 0)
	case "enter", " ":
		if len(m.themes) > 0 {
			m.chosen = m.themes[m.cursor]
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if len(m.themes) == 0 {
		return "No themes available\n"
	}

	var b strings.Builder
	b.WriteString("Select a theme:\n\n")

	left := make([]string, len(m.themes))
	for i, name := range m.themes {
		cursor := "   "
		if i == m.cursor {
			cursor = " → "
		}

		selected := "  "
		if name == m.selected {
			selected = "✓ "
		}

		nameStyle := lipgloss.NewStyle().Width(16)
		if i == m.cursor {
			nameStyle = nameStyle.Bold(true).Background(lipgloss.Color("237"))
		}

		left[i] = cursor + selected + nameStyle.Render(name)
	}

	name := m.themes[m.cursor]
	right := renderPreviewCard(buildThemeDetailsLines(name, m.configs[name]))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(left, "\n"), "    ", right))
	b.WriteString("\n\n")
	b.WriteString(renderFooter())

	return b.String()
}

func renderFooter() string {
	key := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 1)

	sep := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		Render(" │ ")

	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	return key.Render("↑↓") + label.Render(" move") + sep +
		key.Render("g/G") + label.Render(" jump") + sep +
		key.Render("enter") + label.Render(" select") + sep +
		key.Render("q") + label.Render(" cancel")
}

func renderPreviewCard(lines []string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// buildThemeDetailsLines renders a sample product card in the theme's colors.
func buildThemeDetailsLines(name string, cfg style.ColorConfig) []string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return []string{
		muted.Render("Preview: ") + colorize(name, cfg.Info),
		colorize("success", cfg.Success) + "  " +
			colorize("warning", cfg.Warning) + "  " +
			colorize("error", cfg.Error) + "  " +
			colorize("info", cfg.Info) + "  " +
			colorize("muted", cfg.Muted),
		"",
		colorize("PlayStation 5", cfg.Header),
		colorize("Consolas", cfg.Category) + "  " + colorize("$549.990", cfg.Price),
		colorize("★★★★", cfg.Star) + colorize("☆", cfg.Muted),
		colorize("Only 3 left!", cfg.Warning),
	}
}
