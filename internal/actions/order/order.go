package order

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/levelupgamer/lu/internal/actions/cart"
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/ui/style"
	"github.com/levelupgamer/lu/internal/usage"
)

// Checkout turns the cart into an order.
func Checkout(args []string, flags *dispatchers.ParsedFlags) error {
	return checkout(args, flags, DefaultDeps())
}

func checkout(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	o, err := st.Checkout()
	if err != nil {
		return cart.StoreError(err, "")
	}

	log.Info("order: %s placed, %d items, total %d", o.ID, len(o.Items), o.Total)
	_, _ = deps.Printf("%s Order placed\n\n", style.Success("✓"))
	_, _ = deps.Printf("%s", renderOrder(o, deps))
	return nil
}

// List prints every order, newest first.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	orders, err := st.ListOrders()
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	if flags.Has("--json") {
		if orders == nil {
			orders = []domain.Order{}
		}
		return printJSON(orders, deps)
	}

	if len(orders) == 0 {
		_, _ = deps.Println(style.Muted("No orders yet"))
		return nil
	}

	var b strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&b, "%s  %s  %s  %s\n",
			style.Info(o.ID),
			style.Muted(deps.formatTime(o.CreatedAt)),
			StatusLabel(o.Status, 10),
			style.Price(fmt.Sprintf("%12s", deps.price(o.Total))),
		)
	}

	if deps.Pager != nil {
		deps.Pager(b.String())
	} else {
		_, _ = deps.Printf("%s", b.String())
	}
	return nil
}

// Show prints one order with its items.
func Show(args []string, flags *dispatchers.ParsedFlags) error {
	return show(args, flags, DefaultDeps())
}

func show(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) == 0 {
		return usage.MissingArgument("id")
	}
	id := args[0]

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	o, found, err := st.GetOrder(id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if !found {
		return usage.NotFound("order", id)
	}

	if flags.Has("--json") {
		return printJSON(o, deps)
	}

	_, _ = deps.Printf("%s", renderOrder(o, deps))
	return nil
}

// SetStatus assigns any status to an order.
func SetStatus(args []string, flags *dispatchers.ParsedFlags) error {
	return setStatus(args, flags, DefaultDeps())
}

func setStatus(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("id")
	}
	if len(args) < 2 {
		return usage.MissingArgument("status")
	}

	id := args[0]
	status, ok := domain.ParseOrderStatus(args[1])
	if !ok {
		return usage.InvalidValue("status", args[1], strings.Join(statusNames(), ", "))
	}

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	updated, err := st.SetOrderStatus(id, status)
	if err != nil {
		return fmt.Errorf("set order status: %w", err)
	}
	if !updated {
		return usage.NotFound("order", id)
	}

	log.Info("order: %s is now %s", id, status)
	_, _ = deps.Printf("%s Order %s is now %s\n", style.Success("✓"), id, StatusLabel(status, 0))
	return nil
}

// Statuses lists the order statuses.
func Statuses(args []string, flags *dispatchers.ParsedFlags) error {
	return statuses(args, flags, DefaultDeps())
}

func statuses(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	for _, s := range domain.OrderStatuses {
		_, _ = deps.Printf("%s %s\n", format.PadRight(s.String(), 12), StatusLabel(s, 0))
	}
	return nil
}

func statusNames() []string {
	names := make([]string, 0, len(domain.OrderStatuses))
	for _, s := range domain.OrderStatuses {
		names = append(names, s.String())
	}
	return names
}

// StatusLabel returns the colored display label, padded to width when width > 0.
func StatusLabel(s domain.OrderStatus, width int) string {
	label := s.Label()
	if width > 0 {
		label = format.PadRight(label, width)
	}

	switch s {
	case domain.OrderProcessing:
		return style.Info(label)
	case domain.OrderShipped:
		return style.Warning(label)
	case domain.OrderDelivered:
		return style.Success(label)
	case domain.OrderCancelled:
		return style.Error(label)
	default:
		return style.Muted(label)
	}
}

func renderOrder(o domain.Order, deps Deps) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", style.Header("Order"), style.Info(o.ID))
	fmt.Fprintf(&b, "%-8s %s\n", "Status:", StatusLabel(o.Status, 0))
	fmt.Fprintf(&b, "%-8s %s\n", "Placed:", deps.formatTime(o.CreatedAt))
	b.WriteString("\n")

	for _, item := range o.Items {
		fmt.Fprintf(&b, "  %3d × %s  %s\n",
			item.Quantity,
			format.PadRight(format.Truncate(item.Name, 34), 34),
			style.Price(fmt.Sprintf("%12s", deps.price(item.Price*int64(item.Quantity)))),
		)
	}

	fmt.Fprintf(&b, "  %s  %s\n", format.PadRight("Total", 3+3+34), style.Price(fmt.Sprintf("%12s", deps.price(o.Total))))
	return b.String()
}

func printJSON(v any, deps Deps) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	_, _ = deps.Println(string(data))
	return nil
}
