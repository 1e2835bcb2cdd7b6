package cli

import (
	"github.com/levelupgamer/lu/internal/actions"
	"github.com/levelupgamer/lu/internal/actions/cart"
	"github.com/levelupgamer/lu/internal/actions/catalog"
	"github.com/levelupgamer/lu/internal/actions/completions"
	"github.com/levelupgamer/lu/internal/actions/config"
	"github.com/levelupgamer/lu/internal/actions/events"
	"github.com/levelupgamer/lu/internal/actions/logs"
	"github.com/levelupgamer/lu/internal/actions/order"
	"github.com/levelupgamer/lu/internal/actions/product"
	"github.com/levelupgamer/lu/internal/actions/review"
	"github.com/levelupgamer/lu/internal/actions/serve"
	"github.com/levelupgamer/lu/internal/actions/theme"
	"github.com/levelupgamer/lu/internal/dispatchers"
)

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "lu",
		Summary: "Level-Up Gamer storefront",
		Usage:   "lu <command> [flags]",
		Flags:   RootFlags,
	})

	addShopCommands(root)
	addCartCommands(root)
	addEventCommands(root)
	addConfigCommands(root)
	addThemeCommands(root)
	addInfoCommands(root)

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "serve",
		Parent:  root,
		Summary: "Serve the storefront over HTTP",
		Description: `Runs the JSON API under /api/v1 with server-sent event streams for
events and product ratings, and Prometheus metrics at /metrics.

The listen address comes from LU_ADDR (default 127.0.0.1:8080) unless --addr
is given. LU_SHUTDOWN_TIMEOUT bounds the graceful shutdown (default 5s).`,
		Usage:    "lu serve [--addr=<host:port>]",
		Flags:    ServeFlags,
		Action:   serve.Serve,
		Category: dispatchers.CategoryServer,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "help",
		Parent:  root,
		Summary: "Show help for a command",
		Usage:   "lu help [command]",
	})

	return root
}

func addShopCommands(root *dispatchers.DispatchNode) {
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "home",
		Parent:  root,
		Summary: "Show a random selection of featured products",
		Description: `Picks featured_count products at random (4 by default) on every run.
With -i the storefront opens on its home screen; press r there to reshuffle.`,
		Usage:    "lu home [--json] [-i]",
		Flags:    HomeFlags,
		Action:   catalog.Home,
		Category: dispatchers.CategoryShop,
	})

	catalogNode := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "catalog",
		Parent:  root,
		Summary: "List products, filtered by name and category",
		Description: `Lists every product with its rating, price and stock.

--search keeps products whose name contains the text, ignoring case.
--category keeps a single category; All (the default) keeps every one.
With -i the interactive storefront opens with the same filters applied.`,
		Usage:    "lu catalog [--search=<text>] [--category=<name>] [--json] [-i]",
		Flags:    CatalogFlags,
		Action:   catalog.List,
		Category: dispatchers.CategoryShop,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "categories",
		Parent:   catalogNode,
		Summary:  "List product categories",
		Usage:    "lu catalog categories",
		Action:   catalog.Categories,
		Category: dispatchers.CategoryShop,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "seed",
		Parent:   catalogNode,
		Summary:  "Load the demo catalog",
		Usage:    "lu catalog seed",
		Action:   catalog.Seed,
		Category: dispatchers.CategoryShop,
	})

	productNode := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "product",
		Parent:   root,
		Summary:  "Inspect a product",
		Usage:    "lu product <command>",
		Category: dispatchers.CategoryShop,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "show",
		Parent:   productNode,
		Summary:  "Show a product with its reviews",
		Usage:    "lu product show <code> [--json]",
		Flags:    JSONFlags,
		Args:     ProductCodeArg,
		Action:   product.Show,
		Category: dispatchers.CategoryShop,
	})

	reviewNode := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "review",
		Parent:   root,
		Summary:  "Rate products",
		Usage:    "lu review <command>",
		Category: dispatchers.CategoryShop,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "add",
		Parent:   reviewNode,
		Summary:  "Rate a product from 1 to 5 stars",
		Usage:    "lu review add <code> <rating> [--comment=<text>]",
		Flags:    ReviewAddFlags,
		Args:     ReviewArgs,
		Action:   review.Add,
		Category: dispatchers.CategoryShop,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "avg",
		Parent:   reviewNode,
		Summary:  "Show the average rating of a product",
		Usage:    "lu review avg <code> [--watch]",
		Flags:    WatchFlags,
		Args:     ProductCodeArg,
		Action:   review.Avg,
		Category: dispatchers.CategoryShop,
	})
}

func addCartCommands(root *dispatchers.DispatchNode) {
	cartNode := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "cart",
		Parent:   root,
		Summary:  "Manage the shopping cart",
		Usage:    "lu cart <command>",
		Category: dispatchers.CategoryCart,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   cartNode,
		Summary:  "Show the cart and its total",
		Usage:    "lu cart list [--json]",
		Flags:    JSONFlags,
		Action:   cart.List,
		Category: dispatchers.CategoryCart,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "add",
		Parent:   cartNode,
		Summary:  "Add one unit of a product",
		Usage:    "lu cart add <code>",
		Args:     ProductCodeArg,
		Action:   cart.Add,
		Category: dispatchers.CategoryCart,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "remove",
		Parent:   cartNode,
		Summary:  "Remove a product from the cart",
		Usage:    "lu cart remove <code>",
		Args:     ProductCodeArg,
		Action:   cart.Remove,
		Category: dispatchers.CategoryCart,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "clear",
		Parent:   cartNode,
		Summary:  "Empty the cart",
		Usage:    "lu cart clear",
		Action:   cart.Clear,
		Category: dispatchers.CategoryCart,
	})

	orderNode := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "order",
		Parent:   root,
		Summary:  "Place and track orders",
		Usage:    "lu order <command>",
		Category: dispatchers.CategoryCart,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "checkout",
		Parent:  orderNode,
		Summary: "Turn the cart into an order",
		Description: `Records an order for everything in the cart, reduces stock and empties
the cart. Fails without changes when the cart is empty or a product no
longer has enough stock. No payment is taken.`,
		Usage:    "lu order checkout",
		Action:   order.Checkout,
		Category: dispatchers.CategoryCart,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   orderNode,
		Summary:  "List orders, newest first",
		Usage:    "lu order list [--json]",
		Flags:    JSONFlags,
		Action:   order.List,
		Category: dispatchers.CategoryCart,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "show",
		Parent:   orderNode,
		Summary:  "Show an order and its items",
		Usage:    "lu order show <id> [--json]",
		Flags:    JSONFlags,
		Args:     IDArg,
		Action:   order.Show,
		Category: dispatchers.CategoryCart,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "status",
		Parent:   orderNode,
		Summary:  "Set the status of an order",
		Usage:    "lu order status <id> <status>",
		Args:     OrderStatusArgs,
		Action:   order.SetStatus,
		Category: dispatchers.CategoryCart,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "statuses",
		Parent:   orderNode,
		Summary:  "List the order statuses",
		Usage:    "lu order statuses",
		Action:   order.Statuses,
		Category: dispatchers.CategoryCart,
	})
}

func addEventCommands(root *dispatchers.DispatchNode) {
	eventsNode := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "events",
		Parent:   root,
		Summary:  "Manage store events",
		Usage:    "lu events <command>",
		Category: dispatchers.CategoryEvents,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "list",
		Parent:  eventsNode,
		Summary: "List events by start time",
		Description: `Lists every event ordered by start time.
With --watch the list is printed again whenever an event changes, including
changes made by another lu process, until interrupted.`,
		Usage:    "lu events list [--json] [--watch]",
		Flags:    EventsListFlags,
		Action:   events.List,
		Category: dispatchers.CategoryEvents,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "show",
		Parent:   eventsNode,
		Summary:  "Show one event",
		Usage:    "lu events show <id> [--json]",
		Flags:    JSONFlags,
		Args:     IDArg,
		Action:   events.Show,
		Category: dispatchers.CategoryEvents,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "add",
		Parent:   eventsNode,
		Summary:  "Schedule an event",
		Usage:    "lu events add --title=<text> [--starts=<time>] [--location=<text>] [--description=<text>]",
		Flags:    EventsAddFlags,
		Action:   events.Add,
		Category: dispatchers.CategoryEvents,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "update",
		Parent:   eventsNode,
		Summary:  "Change fields of an event",
		Usage:    "lu events update <id> [--title=<text>] [--starts=<time>] [--location=<text>] [--description=<text>]",
		Flags:    EventsUpdateFlags,
		Args:     IDArg,
		Action:   events.Update,
		Category: dispatchers.CategoryEvents,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "delete",
		Parent:   eventsNode,
		Summary:  "Delete an event",
		Usage:    "lu events delete <id>",
		Args:     IDArg,
		Action:   events.Delete,
		Category: dispatchers.CategoryEvents,
	})
}

func addConfigCommands(root *dispatchers.DispatchNode) {
	configNode := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "config",
		Parent:   root,
		Summary:  "Manage configuration",
		Usage:    "lu config <command>",
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   configNode,
		Summary:  "Print a config value",
		Usage:    "lu config get <key>",
		Args:     ConfigKeyArg,
		Action:   config.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   configNode,
		Summary:  "Set a config value",
		Usage:    "lu config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Action:   config.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   configNode,
		Summary:  "Restore a config value to its default",
		Usage:    "lu config unset <key> | --all",
		Flags:    ConfigUnsetFlags,
		Args:     OptionalConfigKeyArg,
		Action:   config.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   configNode,
		Summary:  "List all config values",
		Usage:    "lu config list",
		Action:   config.List,
		Category: dispatchers.CategoryConfig,
	})
}

func addThemeCommands(root *dispatchers.DispatchNode) {
	themeNode := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "theme",
		Parent:   root,
		Summary:  "Change the color theme",
		Usage:    "lu theme <command>",
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   themeNode,
		Summary:  "List available themes",
		Usage:    "lu theme list",
		Action:   theme.List,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   themeNode,
		Summary:  "Use a theme",
		Usage:    "lu theme set <name>",
		Args:     ThemeNameArg,
		Action:   theme.Set,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "pick",
		Parent:   themeNode,
		Summary:  "Pick a theme with a live preview",
		Usage:    "lu theme pick",
		Action:   theme.Pick,
		Category: dispatchers.CategoryTheme,
	})
}

func addInfoCommands(root *dispatchers.DispatchNode) {
	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show lu version",
		Usage:    "lu version [--verbose]",
		Flags:    VersionFlags,
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryInfo,
	})

	logsNode := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "logs",
		Parent:   root,
		Summary:  "Show the log file",
		Usage:    "lu logs [--limit=<n>] [--json]",
		Flags:    LogsFlags,
		Action:   logs.View,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "tail",
		Parent:   logsNode,
		Summary:  "Follow the log file",
		Usage:    "lu logs tail",
		Action:   logs.Tail,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "clear",
		Parent:   logsNode,
		Summary:  "Empty the log file",
		Usage:    "lu logs clear",
		Action:   logs.Clear,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "completions",
		Parent:   root,
		Summary:  "Set up shell completions",
		Usage:    "lu completions [bash|zsh|fish] [--script]",
		Flags:    CompletionsFlags,
		Args:     OptionalShellArg,
		Action:   completions.Completions,
		Category: dispatchers.CategoryInfo,
	})
}
