package catalog

import "fmt"

// DefaultLowStockThreshold is the quantity at or below which a hint is shown.
const DefaultLowStockThreshold = 5

// StockLabel describes scarce stock: "Out of stock" at zero, "Only N left!"
// from 1 to threshold, and "" otherwise.
func StockLabel(quantity, threshold int) string {
	switch {
	case quantity <= 0:
		return "Out of stock"
	case quantity <= threshold:
		return fmt.Sprintf("Only %d left!", quantity)
	default:
		return ""
	}
}

// CanAddToCart reports whether a product with quantity in stock can be added.
func CanAddToCart(quantity int) bool {
	return quantity > 0
}
