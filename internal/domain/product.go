package domain

// AllCategories is the category selector value that matches every product.
const AllCategories = "All"

// Product is the catalog read model.
type Product struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// InStock reports whether at least one unit can be added to the cart.
func (p Product) InStock() bool {
	return p.Quantity > 0
}
