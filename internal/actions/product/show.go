package product

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
	"github.com/levelupgamer/lu/internal/ui/style"
	"github.com/levelupgamer/lu/internal/usage"
)

type productDetail struct {
	domain.Product
	Rating  *float64        `json:"rating"`
	InCart  bool            `json:"in_cart"`
	Reviews []domain.Review `json:"reviews"`
}

// Show prints a product with its rating, stock and reviews.
func Show(args []string, flags *dispatchers.ParsedFlags) error {
	return show(args, flags, DefaultDeps())
}

func show(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) == 0 {
		return usage.MissingArgument("code")
	}
	code := args[0]

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	p, found, err := st.GetProduct(code)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if !found {
		return usage.NotFound("product", code)
	}

	rating, err := st.AverageRating(code)
	if err != nil {
		return fmt.Errorf("average rating: %w", err)
	}
	reviews, err := st.ListReviews(code)
	if err != nil {
		return fmt.Errorf("list reviews: %w", err)
	}
	cartCodes, err := st.CartCodes()
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	detail := productDetail{
		Product: p,
		Rating:  rating,
		InCart:  catalog.InCart(code, cartCodes),
		Reviews: reviews,
	}
	if detail.Reviews == nil {
		detail.Reviews = []domain.Review{}
	}

	if flags.Has("--json") {
		data, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return fmt.Errorf("encode product: %w", err)
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	_, _ = deps.Printf("%s", renderDetail(detail, deps))
	return nil
}

func renderDetail(d productDetail, deps Deps) string {
	maxStars := getInt(deps, "max_stars", catalog.DefaultMaxStars)
	threshold := getInt(deps, "low_stock_threshold", catalog.DefaultLowStockThreshold)

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", style.Header(d.Name), style.Muted("("+d.Code+")"))
	fmt.Fprintf(&b, "%-10s %s\n", "Category:", style.Category(d.Category))
	fmt.Fprintf(&b, "%-10s %s\n", "Price:", style.Price(price(deps, d.Price)))

	stock := fmt.Sprintf("%d", d.Quantity)
	if hint := format.Stock(d.Quantity, threshold); hint != "" {
		stock += "  " + hint
	}
	fmt.Fprintf(&b, "%-10s %s\n", "Stock:", stock)

	rating := format.Stars(d.Rating, maxStars)
	if d.Rating != nil {
		rating += fmt.Sprintf(" %.1f (%s)", *d.Rating, plural(len(d.Reviews), "review"))
	} else {
		rating += " " + style.Muted("no reviews yet")
	}
	fmt.Fprintf(&b, "%-10s %s\n", "Rating:", rating)

	if d.InCart {
		fmt.Fprintf(&b, "%-10s %s\n", "In cart:", style.Success("yes"))
	}
	if d.Image != "" {
		fmt.Fprintf(&b, "%-10s %s\n", "Image:", d.Image)
	}
	if d.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", d.Description)
	}

	if len(d.Reviews) > 0 {
		fmt.Fprintf(&b, "\n%s\n", style.Header("Reviews"))
		for _, r := range d.Reviews {
			stars := format.Stars(catalog.Rating(float64(r.Rating)), maxStars)
			when := ""
			if deps.FormatTime != nil {
				when = style.Muted(deps.FormatTime(r.CreatedAt))
			}
			line := strings.TrimRight(fmt.Sprintf("  %s  %s  %s", stars, when, r.Comment), " ")
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

func getInt(deps Deps, key string, fallback int) int {
	if deps.GetInt == nil {
		return fallback
	}
	return deps.GetInt(key, fallback)
}

func price(deps Deps, amount int64) string {
	if deps.Price == nil {
		return fmt.Sprintf("$%d", amount)
	}
	return deps.Price(amount)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
