package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/ui/style"
	"github.com/levelupgamer/lu/internal/usage"
)

// Add puts one unit of a product in the cart.
func Add(args []string, flags *dispatchers.ParsedFlags) error {
	return add(args, flags, DefaultDeps())
}

func add(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) == 0 {
		return usage.MissingArgument("code")
	}
	code := args[0]

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.AddToCart(code); err != nil {
		return StoreError(err, code)
	}

	lines, err := st.ListCart()
	if err != nil {
		return fmt.Errorf("list cart: %w", err)
	}
	for _, l := range lines {
		if l.Product.Code == code {
			log.Debug("cart: added %s (%d in cart)", code, l.Quantity)
			_, _ = deps.Printf("%s Added %s to cart %s\n", style.Success("✓"), l.Product.Name, style.Muted(fmt.Sprintf("(%d in cart)", l.Quantity)))
			break
		}
	}
	return nil
}

// StoreError maps cart and checkout failures to usage errors.
func StoreError(err error, code string) error {
	var stockErr *domain.StockError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return usage.NotFound("product", code)
	case errors.Is(err, domain.ErrEmptyCart):
		return usage.EmptyCart()
	case errors.As(err, &stockErr):
		if stockErr.Available == 0 {
			return usage.OutOfStock(stockErr.ProductCode)
		}
		return &usage.Error{Kind: usage.ErrOutOfStock, Message: "lu: " + stockErr.Error()}
	default:
		return err
	}
}

// Remove drops a product line from the cart.
func Remove(args []string, flags *dispatchers.ParsedFlags) error {
	return remove(args, flags, DefaultDeps())
}

func remove(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) == 0 {
		return usage.MissingArgument("code")
	}
	code := args[0]

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	removed, err := st.RemoveFromCart(code)
	if err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}
	if !removed {
		return usage.NotFound("cart item", code)
	}

	_, _ = deps.Printf("%s Removed %s from cart\n", style.Success("✓"), code)
	return nil
}

// List prints the cart with subtotals and the total.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

type cartView struct {
	Lines []domain.CartLine `json:"lines"`
	Total int64             `json:"total"`
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	lines, err := st.ListCart()
	if err != nil {
		return fmt.Errorf("list cart: %w", err)
	}

	view := cartView{Lines: lines, Total: total(lines)}
	if view.Lines == nil {
		view.Lines = []domain.CartLine{}
	}

	if flags.Has("--json") {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("encode cart: %w", err)
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	if len(lines) == 0 {
		_, _ = deps.Println(style.Muted("Your cart is empty"))
		return nil
	}

	_, _ = deps.Printf("%s", renderCart(lines, deps))
	return nil
}

func total(lines []domain.CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Subtotal()
	}
	return sum
}

func renderCart(lines []domain.CartLine, deps Deps) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%s  %3d × %s  %s\n",
			style.Info(format.PadRight(l.Product.Code, 6)),
			l.Quantity,
			format.PadRight(format.Truncate(l.Product.Name, 34), 34),
			style.Price(fmt.Sprintf("%12s", deps.price(l.Subtotal()))),
		)
	}
	fmt.Fprintf(&b, "%s  %s\n",
		format.PadRight("Total", 6+2+3+3+34),
		style.Price(fmt.Sprintf("%12s", deps.price(total(lines)))),
	)
	return b.String()
}

// Clear empties the cart.
func Clear(args []string, flags *dispatchers.ParsedFlags) error {
	return clearCart(args, flags, DefaultDeps())
}

func clearCart(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.ClearCart(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	_, _ = deps.Println(style.Success("✓") + " Cart cleared")
	return nil
}
