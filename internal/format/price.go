package format

import (
	"golang.org/x/text/language"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/config"
)

// Price formats an amount using the configured locale.
func Price(amount int64) string {
	return catalog.FormatPrice(Locale(), amount)
}

// Locale returns the configured locale, falling back to es-CL when unset or invalid.
func Locale() language.Tag {
	v, _ := config.Get("locale")
	tag, err := language.Parse(v)
	if err != nil {
		return catalog.DefaultLocale
	}
	return tag
}
