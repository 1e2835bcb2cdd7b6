package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is returned by checkout when the cart has no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrProductNotFound is returned when a cart operation names an unknown product.
	ErrProductNotFound = errors.New("product not found")
)

// StockError reports that a product cannot cover the requested quantity.
type StockError struct {
	ProductCode string
	Available   int
	Requested   int
}

func (e *StockError) Error() string {
	if e.Available == 0 {
		return fmt.Sprintf("product %s is out of stock", e.ProductCode)
	}
	return fmt.Sprintf("product %s has %d left, %d requested", e.ProductCode, e.Available, e.Requested)
}
