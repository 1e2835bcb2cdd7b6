package catalog

import (
	"fmt"

	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/store"
	"github.com/levelupgamer/lu/internal/ui/style"
)

// Seed loads the built-in demo catalog. Running it again resets names,
// prices and stock of the demo products.
func Seed(args []string, flags *dispatchers.ParsedFlags) error {
	return seed(args, flags, DefaultDeps())
}

func seed(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.UpsertProducts(store.DemoCatalog); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	log.Info("catalog: seeded %d products", len(store.DemoCatalog))
	_, _ = deps.Printf("%s %d products loaded\n", style.Success("✓"), len(store.DemoCatalog))
	return nil
}
