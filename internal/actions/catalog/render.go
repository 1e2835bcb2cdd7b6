package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
	"github.com/levelupgamer/lu/internal/ui/style"
)

// productView is the JSON shape of a listed product.
type productView struct {
	domain.Product
	Rating     *float64 `json:"rating"`
	InCart     bool     `json:"in_cart"`
	StockLabel string   `json:"stock_label,omitempty"`
}

// shelf is everything needed to render products: ratings and cart membership.
type shelf struct {
	ratings   map[string]float64
	cartCodes []string
	settings  settings
	price     func(int64) string
}

func loadShelf(st domain.Store, deps Deps) (shelf, error) {
	ratings, err := st.AverageRatings()
	if err != nil {
		return shelf{}, fmt.Errorf("load ratings: %w", err)
	}
	codes, err := st.CartCodes()
	if err != nil {
		return shelf{}, fmt.Errorf("load cart: %w", err)
	}

	price := deps.Price
	if price == nil {
		price = func(amount int64) string { return fmt.Sprintf("$%d", amount) }
	}

	return shelf{
		ratings:   ratings,
		cartCodes: codes,
		settings:  loadSettings(deps),
		price:     price,
	}, nil
}

func (s shelf) rating(code string) *float64 {
	if r, ok := s.ratings[code]; ok {
		return catalog.Rating(r)
	}
	return nil
}

func (s shelf) view(p domain.Product) productView {
	return productView{
		Product:    p,
		Rating:     s.rating(p.Code),
		InCart:     catalog.InCart(p.Code, s.cartCodes),
		StockLabel: catalog.StockLabel(p.Quantity, s.settings.lowStockThreshold),
	}
}

func (s shelf) renderJSON(products []domain.Product) (string, error) {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, s.view(p))
	}
	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// renderTable lays out one product per line:
// code, name, category, price, stars, stock hint and a cart marker.
func (s shelf) renderTable(products []domain.Product) string {
	var b strings.Builder
	for _, p := range products {
		b.WriteString(s.renderRow(p))
		b.WriteString("\n")
	}
	return b.String()
}

func (s shelf) renderRow(p domain.Product) string {
	parts := []string{
		style.Info(format.PadRight(p.Code, 6)),
		format.PadRight(format.Truncate(p.Name, 34), 34),
		style.Category(format.PadRight(format.Truncate(p.Category, 22), 22)),
		style.Price(fmt.Sprintf("%12s", s.price(p.Price))),
		format.Stars(s.rating(p.Code), s.settings.maxStars),
	}

	if hint := format.Stock(p.Quantity, s.settings.lowStockThreshold); hint != "" {
		parts = append(parts, hint)
	}
	if catalog.InCart(p.Code, s.cartCodes) {
		parts = append(parts, style.Success("✓ in cart"))
	}

	return strings.Join(parts, "  ")
}
