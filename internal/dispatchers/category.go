package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryShop                          // Browsing the catalog
	CategoryCart                          // Cart and orders
	CategoryEvents                        // Store events
	CategoryConfig                        // Configuration
	CategoryTheme                         // Theme customization
	CategoryInfo                          // Version, logs
	CategoryServer                        // HTTP API
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryShop:
		return "browse the store"
	case CategoryCart:
		return "cart and orders"
	case CategoryEvents:
		return "store events"
	case CategoryConfig:
		return "configure lu"
	case CategoryTheme:
		return "customize appearance"
	case CategoryInfo:
		return "inspect lu"
	case CategoryServer:
		return "serve the storefront"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryShop,
	CategoryCart,
	CategoryEvents,
	CategoryConfig,
	CategoryTheme,
	CategoryInfo,
	CategoryServer,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
