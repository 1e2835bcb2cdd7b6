package catalog

import (
	"fmt"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/ui/style"
)

// Home prints a fresh random sample of featured products.
func Home(args []string, flags *dispatchers.ParsedFlags) error {
	return home(args, flags, DefaultDeps())
}

func home(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if flags.Any("--interactive", "-i") {
		return browse(deps, routeHome, "", domain.AllCategories)
	}

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	products, err := st.ListProducts()
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	sh, err := loadShelf(st, deps)
	if err != nil {
		return err
	}

	featured := catalog.Featured(products, sh.settings.featuredCount, deps.Rand)

	if flags.Has("--json") {
		out, err := sh.renderJSON(featured)
		if err != nil {
			return err
		}
		_, _ = deps.Println(out)
		return nil
	}

	_, _ = deps.Println(style.Header("Level-Up Gamer"))
	_, _ = deps.Println(style.Muted("Featured products"))
	_, _ = deps.Println()

	if len(featured) == 0 {
		_, _ = deps.Println(style.Muted("Nothing to feature yet. Run 'lu catalog seed' to load the demo catalog."))
		return nil
	}

	_, _ = deps.Printf("%s", sh.renderTable(featured))
	return nil
}
