package format

import (
	"strings"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/ui/style"
)

// Stars renders a rating bar with filled stars in the theme's star color.
func Stars(rating *float64, maxStars int) string {
	return catalog.StyledRatingBar(rating, maxStars, style.Star, style.Muted)
}

// Stock renders the stock hint for quantity, colored by severity.
func Stock(quantity, threshold int) string {
	label := catalog.StockLabel(quantity, threshold)
	switch {
	case label == "":
		return ""
	case quantity <= 0:
		return style.Error(label)
	default:
		return style.Warning(label)
	}
}

// Truncate shortens s to at most width runes, ending in "…" when cut.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// PadRight pads s with spaces to width runes.
func PadRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
