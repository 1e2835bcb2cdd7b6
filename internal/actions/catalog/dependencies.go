package catalog

import (
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/levelupgamer/lu/internal/app"
	"github.com/levelupgamer/lu/internal/config"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
	"github.com/levelupgamer/lu/internal/ui"
)

type Deps struct {
	OpenStore func() (domain.Store, error)

	// io
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
	Pager   func(string)

	// settings
	GetInt func(string, int) int
	Price  func(int64) string

	// Rand drives the featured sample; nil uses the global source.
	Rand *rand.Rand

	// tui
	IsTerminal func() bool
	RunProgram func(tea.Model) (tea.Model, error)
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore: app.OpenStore,

		Printf:  fmt.Printf,
		Println: fmt.Println,
		Pager:   ui.NewWriter().Pager,

		GetInt: config.GetInt,
		Price:  format.Price,

		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		RunProgram: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
		},
	}
}

// settings are the storefront config values read once per command.
type settings struct {
	featuredCount     int
	maxStars          int
	lowStockThreshold int
}

func loadSettings(deps Deps) settings {
	getInt := deps.GetInt
	if getInt == nil {
		getInt = func(_ string, fallback int) int { return fallback }
	}
	return settings{
		featuredCount:     getInt("featured_count", 4),
		maxStars:          getInt("max_stars", 5),
		lowStockThreshold: getInt("low_stock_threshold", 5),
	}
}
