package domain

import "time"

// CartItem is one product line in the shopping cart.
type CartItem struct {
	ProductCode string    `json:"product_code"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

// CartLine joins a cart item with its product for display.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price times quantity.
func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}
