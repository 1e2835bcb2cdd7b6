package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/store"
	"github.com/levelupgamer/lu/internal/testutil"
	"github.com/levelupgamer/lu/internal/usage"
)

func newTestDeps(t *testing.T) (Deps, *store.Store, *strings.Builder) {
	t.Helper()

	st := testutil.NewTestStore(t)
	testutil.SeedProducts(t, st,
		domain.Product{Code: "JM001", Name: "Catan", Category: "Juegos de Mesa", Price: 29990, Quantity: 2},
		domain.Product{Code: "AC002", Name: "HyperX Cloud II", Category: "Accesorios", Price: 79990, Quantity: 0},
	)

	out := &strings.Builder{}
	return Deps{
		OpenStore: testutil.StoreOpener(st),
		Printf:    func(format string, a ...any) (int, error) { return fmt.Fprintf(out, format, a...) },
		Println:   func(a ...any) (int, error) { return fmt.Fprintln(out, a...) },
	}, st, out
}

func noFlags() *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(nil)
}

func requireKind(t *testing.T, err error, kind usage.ErrorKind) {
	t.Helper()
	var ue *usage.Error
	require.True(t, errors.As(err, &ue), "expected usage error, got %v", err)
	require.Equal(t, kind, ue.Kind)
}

func TestAdd_IncrementsQuantity(t *testing.T) {
	deps, st, out := newTestDeps(t)

	require.NoError(t, add([]string{"JM001"}, noFlags(), deps))
	require.NoError(t, add([]string{"JM001"}, noFlags(), deps))

	require.Contains(t, out.String(), "Added Catan to cart (1 in cart)")
	require.Contains(t, out.String(), "Added Catan to cart (2 in cart)")

	lines, err := st.ListCart()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)
}

func TestAdd_Errors(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	requireKind(t, add(nil, noFlags(), deps), usage.ErrMissingArgument)
	requireKind(t, add([]string{"XX001"}, noFlags(), deps), usage.ErrNotFound)
	requireKind(t, add([]string{"AC002"}, noFlags(), deps), usage.ErrOutOfStock)
}

func TestAdd_BeyondStock(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	require.NoError(t, add([]string{"JM001"}, noFlags(), deps))
	require.NoError(t, add([]string{"JM001"}, noFlags(), deps))

	err := add([]string{"JM001"}, noFlags(), deps)
	requireKind(t, err, usage.ErrOutOfStock)
	require.Contains(t, err.Error(), "2 left")
}

func TestStoreError(t *testing.T) {
	plain := errors.New("disk I/O error")

	require.Equal(t, plain, StoreError(plain, "JM001"))
	requireKind(t, StoreError(domain.ErrEmptyCart, ""), usage.ErrEmptyCart)
	requireKind(t, StoreError(fmt.Errorf("checkout: %w", domain.ErrProductNotFound), "JM001"), usage.ErrNotFound)

	err := StoreError(&domain.StockError{ProductCode: "AC002"}, "AC002")
	requireKind(t, err, usage.ErrOutOfStock)
	require.Contains(t, err.Error(), "AC002")
}

func TestRemove(t *testing.T) {
	deps, st, out := newTestDeps(t)
	require.NoError(t, st.AddToCart("JM001"))

	require.NoError(t, remove([]string{"JM001"}, noFlags(), deps))
	require.Contains(t, out.String(), "Removed JM001")

	requireKind(t, remove([]string{"JM001"}, noFlags(), deps), usage.ErrNotFound)
	requireKind(t, remove(nil, noFlags(), deps), usage.ErrMissingArgument)
}

func TestList_Empty(t *testing.T) {
	deps, _, out := newTestDeps(t)

	require.NoError(t, list(nil, noFlags(), deps))
	require.Equal(t, "Your cart is empty\n", out.String())
}

func TestList_Table(t *testing.T) {
	deps, st, out := newTestDeps(t)
	require.NoError(t, st.AddToCart("JM001"))
	require.NoError(t, st.AddToCart("JM001"))

	require.NoError(t, list(nil, noFlags(), deps))

	text := out.String()
	require.Contains(t, text, "2 × Catan")
	require.Contains(t, text, "$59980")
	require.Contains(t, text, "Total")
}

func TestList_JSON(t *testing.T) {
	deps, st, out := newTestDeps(t)
	require.NoError(t, st.AddToCart("JM001"))

	require.NoError(t, list(nil, dispatchers.NewParsedFlags([]string{"--json"}), deps))

	var view cartView
	require.NoError(t, json.Unmarshal([]byte(out.String()), &view))
	require.Len(t, view.Lines, 1)
	require.Equal(t, int64(29990), view.Total)
}

func TestClear(t *testing.T) {
	deps, st, out := newTestDeps(t)
	require.NoError(t, st.AddToCart("JM001"))

	require.NoError(t, clearCart(nil, noFlags(), deps))
	require.Contains(t, out.String(), "Cart cleared")

	codes, err := st.CartCodes()
	require.NoError(t, err)
	require.Empty(t, codes)
}
