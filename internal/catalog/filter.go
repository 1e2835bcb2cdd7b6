package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/levelupgamer/lu/internal/domain"
)

// Filter returns the products in category (or every category for
// domain.AllCategories) whose name contains search, ignoring case.
// A blank search matches everything. Input order is preserved.
func Filter(products []domain.Product, search, category string) []domain.Product {
	fold := cases.Fold()
	needle := ""
	if strings.TrimSpace(search) != "" {
		needle = fold.String(search)
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != domain.AllCategories && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CategoryOrAll returns category, or domain.AllCategories when it is blank.
func CategoryOrAll(category string) string {
	if strings.TrimSpace(category) == "" {
		return domain.AllCategories
	}
	return category
}

// Categories returns domain.AllCategories followed by the distinct product
// categories in ascending order.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	var distinct []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		distinct = append(distinct, p.Category)
	}
	slices.Sort(distinct)

	return append([]string{domain.AllCategories}, distinct...)
}
