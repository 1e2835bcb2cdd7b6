package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is the storefront's home locale (Chilean peso, no decimals).
var DefaultLocale = language.MustParse("es-CL")

// FormatPrice renders amount with the digit grouping of tag and a "$" sign.
func FormatPrice(tag language.Tag, amount int64) string {
	p := message.NewPrinter(tag)
	if amount < 0 {
		return p.Sprintf("-$%d", -amount)
	}
	return p.Sprintf("$%d", amount)
}
