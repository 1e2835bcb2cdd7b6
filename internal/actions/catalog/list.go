package catalog

import (
	"fmt"
	"strings"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/ui/style"
)

// List prints the catalog filtered by --search and --category.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	search := flags.String("--search", "")
	category := catalog.CategoryOrAll(flags.String("--category", ""))

	if flags.Any("--interactive", "-i") {
		return browse(deps, routeCatalog, search, category)
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

	filtered := catalog.Filter(products, search, category)
	log.Debug("catalog: %d of %d products match search=%q category=%q", len(filtered), len(products), search, category)

	if flags.Has("--json") {
		out, err := sh.renderJSON(filtered)
		if err != nil {
			return err
		}
		_, _ = deps.Println(out)
		return nil
	}

	if len(products) == 0 {
		_, _ = deps.Println(style.Muted("The catalog is empty. Run 'lu catalog seed' to load the demo catalog."))
		return nil
	}
	if len(filtered) == 0 {
		_, _ = deps.Println(style.Muted("No products match"))
		return nil
	}

	deps.Pager(sh.renderTable(filtered))
	return nil
}

// Categories prints the category selector values, starting with "All".
func Categories(args []string, flags *dispatchers.ParsedFlags) error {
	return categories(args, flags, DefaultDeps())
}

func categories(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	products, err := st.ListProducts()
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}

	var b strings.Builder
	for _, c := range catalog.Categories(products) {
		n := len(products)
		if c != domain.AllCategories {
			n = counts[c]
		}
		fmt.Fprintf(&b, "%s %s\n", style.Category(c), style.Muted(fmt.Sprintf("(%d)", n)))
	}

	_, _ = deps.Printf("%s", b.String())
	return nil
}
