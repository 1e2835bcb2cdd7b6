package review

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/ui/style"
	"github.com/levelupgamer/lu/internal/usage"
)

// Add records a rating between 1 and 5 for a product.
func Add(args []string, flags *dispatchers.ParsedFlags) error {
	return add(args, flags, DefaultDeps())
}

func add(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("code")
	}
	if len(args) < 2 {
		return usage.MissingArgument("rating")
	}

	code := args[0]
	rating, err := parseRating(args[1])
	if err != nil {
		return err
	}

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

	r := domain.Review{
		ProductCode: code,
		Rating:      rating,
		Comment:     strings.TrimSpace(flags.String("--comment", "")),
	}
	if err := st.AddReview(&r); err != nil {
		return fmt.Errorf("add review: %w", err)
	}

	log.Info("review: %s rated %d", code, rating)
	_, _ = deps.Printf("%s Rated %s %d/%d\n", style.Success("✓"), p.Name, rating, domain.MaxRating)
	return nil
}

func parseRating(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < domain.MinRating || n > domain.MaxRating {
		return 0, usage.InvalidValue("rating", s, fmt.Sprintf("whole number from %d to %d", domain.MinRating, domain.MaxRating))
	}
	return n, nil
}

// Avg prints the average rating of a product. With --watch it keeps
// printing a new line each time the average changes.
func Avg(args []string, flags *dispatchers.ParsedFlags) error {
	return avg(args, flags, DefaultDeps())
}

func avg(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
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

	maxStars := catalog.DefaultMaxStars
	if deps.GetInt != nil {
		maxStars = deps.GetInt("max_stars", maxStars)
	}

	if !flags.Has("--watch") {
		rating, err := st.AverageRating(code)
		if err != nil {
			return fmt.Errorf("average rating: %w", err)
		}
		_, _ = deps.Println(ratingLine(p, rating, maxStars))
		return nil
	}

	ctx, stop := deps.WatchContext()
	defer stop()

	var last *float64
	first := true
	for rating := range st.WatchAverageRating(ctx, code) {
		if !first && sameRating(last, rating) {
			continue
		}
		first = false
		last = rating
		_, _ = deps.Println(ratingLine(p, rating, maxStars))
	}
	return nil
}

func sameRating(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func ratingLine(p domain.Product, rating *float64, maxStars int) string {
	line := fmt.Sprintf("%s: %s", p.Name, format.Stars(rating, maxStars))
	if rating == nil {
		return line + " " + style.Muted("no reviews yet")
	}
	return line + fmt.Sprintf(" %.2f", *rating)
}
