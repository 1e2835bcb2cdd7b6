package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/store"
	"github.com/levelupgamer/lu/internal/testutil"
	"github.com/levelupgamer/lu/internal/ui/components"
)

func newTestModel(t *testing.T) (browseModel, *store.Store) {
	t.Helper()

	st := testutil.NewTestStore(t)
	testutil.SeedProducts(t, st, testProducts...)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	price := func(amount int64) string { return fmt.Sprintf("$%d", amount) }
	m := newBrowseModel(ctx, st, settings{featuredCount: 2, maxStars: 5, lowStockThreshold: 5}, price, rand.New(rand.NewPCG(7, 7)))

	products, err := st.ListProducts()
	require.NoError(t, err)
	m = update(t, m, productsMsg(products))
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	return m, st
}

func update(t *testing.T, m browseModel, msg tea.Msg) browseModel {
	t.Helper()
	next, _ := m.Update(msg)
	bm, ok := next.(browseModel)
	require.True(t, ok)
	return bm
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func featuredCodes(m browseModel) []string {
	var out []string
	for _, p := range m.featured {
		out = append(out, p.Code)
	}
	return out
}

func TestBrowse_RequiresTerminal(t *testing.T) {
	deps := Deps{IsTerminal: func() bool { return false }}

	err := browse(deps, routeHome, "", domain.AllCategories)
	require.Error(t, err)
}

func TestBrowse_RunsProgram(t *testing.T) {
	st := testutil.NewTestStore(t)
	var started browseModel
	deps := Deps{
		OpenStore:  testutil.StoreOpener(st),
		IsTerminal: func() bool { return true },
		RunProgram: func(m tea.Model) (tea.Model, error) {
			started = m.(browseModel)
			return m, nil
		},
	}

	require.NoError(t, browse(deps, routeCatalog, "cat", "Juegos de Mesa"))
	require.Equal(t, routeCatalog, started.route)
	require.Equal(t, "cat", started.search.Value())
	require.Equal(t, "Juegos de Mesa", started.category)
}

func TestBrowse_ProgramError(t *testing.T) {
	deps := Deps{
		OpenStore:  testutil.StoreOpener(testutil.NewTestStore(t)),
		IsTerminal: func() bool { return true },
		RunProgram: func(m tea.Model) (tea.Model, error) { return m, errors.New("no tty") },
	}

	require.EqualError(t, browse(deps, routeHome, "", domain.AllCategories), "no tty")
}

func TestBrowseModel_FeaturedStableAcrossUpdates(t *testing.T) {
	m, st := newTestModel(t)
	require.Len(t, m.featured, 2)
	before := featuredCodes(m)

	// a price change re-emits the catalog; the sample keeps its products
	changed := m.featured[0]
	changed.Price = 1
	require.NoError(t, st.UpsertProducts([]domain.Product{changed}))
	products, err := st.ListProducts()
	require.NoError(t, err)
	m = update(t, m, productsMsg(products))

	require.Equal(t, before, featuredCodes(m))
	require.Equal(t, int64(1), m.featured[0].Price)
}

func TestBrowseModel_FeaturedResampledWhenProductDisappears(t *testing.T) {
	m, _ := newTestModel(t)
	gone := m.featured[0].Code

	var remaining []domain.Product
	for _, p := range testProducts {
		if p.Code != gone {
			remaining = append(remaining, p)
		}
	}
	m = update(t, m, productsMsg(remaining))

	require.Len(t, m.featured, 2)
	require.NotContains(t, featuredCodes(m), gone)
}

func TestBrowseModel_Reshuffle(t *testing.T) {
	m, _ := newTestModel(t)

	seen := map[string]bool{}
	for range 20 {
		m = update(t, m, keyRunes("r"))
		require.Len(t, m.featured, 2)
		seen[featuredCodes(m)[0]+featuredCodes(m)[1]] = true
	}
	require.Greater(t, len(seen), 1)
}

func TestBrowseModel_Navigation(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, routeHome, m.route)

	m = update(t, m, keyRunes("b"))
	require.Equal(t, routeCatalog, m.route)
	require.Len(t, m.visible(), len(testProducts))

	m = update(t, m, keyRunes("c"))
	require.Equal(t, routeCart, m.route)

	m = update(t, m, keyRunes("h"))
	require.Equal(t, routeHome, m.route)
}

func TestBrowseModel_CategorySidebar(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, keyRunes("b"))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.focusSidebar)

	// All, Accesorios, Consolas, Juegos de Mesa, Mouse
	m = update(t, m, keyRunes("j"))
	m = update(t, m, keyRunes("j"))
	require.Equal(t, "Consolas", m.category)
	require.Len(t, m.visible(), 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.focusSidebar)
}

func TestBrowseModel_Search(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, keyRunes("/"))
	require.Equal(t, routeCatalog, m.route)
	require.True(t, m.searching)

	for _, r := range "CAT" {
		m = update(t, m, keyRunes(string(r)))
	}
	require.Equal(t, "CAT", m.search.Value())
	require.Len(t, m.visible(), 1)
	require.Equal(t, "JM001", m.visible()[0].Code)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.searching)
	require.Equal(t, "CAT", m.search.Value())

	// esc outside the input clears the search before quitting
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Empty(t, m.search.Value())
	require.Len(t, m.visible(), len(testProducts))
}

func TestBrowseModel_AddToCart(t *testing.T) {
	m, st := newTestModel(t)
	m = update(t, m, keyRunes("b"))

	// Auriculares HyperX (out of stock) sorts first
	m = update(t, m, keyRunes("a"))
	require.True(t, m.messageIsError)
	require.Contains(t, m.message, "out of stock")

	m = update(t, m, keyRunes("j"))
	next, cmd := m.Update(keyRunes("a"))
	require.NotNil(t, cmd)
	m = next.(browseModel)

	m = update(t, m, cmd())
	require.False(t, m.messageIsError)
	require.Contains(t, m.message, "Carcassonne added to cart")

	codes, err := st.CartCodes()
	require.NoError(t, err)
	require.Equal(t, []string{"JM002"}, codes)
}

func TestBrowseModel_AddInCartProductOpensCart(t *testing.T) {
	m, st := newTestModel(t)
	require.NoError(t, st.AddToCart("JM002"))
	m = update(t, m, cartCodesMsg{"JM002"})

	m = update(t, m, keyRunes("b"))
	m = update(t, m, keyRunes("j"))
	require.Contains(t, m.View(), "go to cart")

	next, cmd := m.Update(keyRunes("a"))
	require.Nil(t, cmd)
	m = next.(browseModel)
	require.Equal(t, routeCart, m.route)

	lines, err := st.ListCart()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, 1, lines[0].Quantity)
}

func TestBrowseModel_DrawerAddInCartProductOpensCart(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, cartCodesMsg{"JM002"})
	m = update(t, m, keyRunes("b"))
	m = update(t, m, keyRunes("j"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.drawerOpen)

	next, cmd := m.Update(keyRunes("a"))
	require.Nil(t, cmd)
	m = next.(browseModel)
	require.Equal(t, routeCart, m.route)
	require.False(t, m.drawerOpen)
}

func TestBrowseModel_AddToCartStockErrorShown(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, resultMsg{err: &domain.StockError{ProductCode: "CO001", Available: 2, Requested: 3}})

	require.True(t, m.messageIsError)
	require.Contains(t, m.message, "CO001 has 2 left")
}

func TestBrowseModel_CartMarkers(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, keyRunes("b"))
	m = update(t, m, cartCodesMsg{"JM001"})

	require.Contains(t, m.formatProduct(testProducts[0], 80, false), "✓")
	require.NotContains(t, m.formatProduct(testProducts[1], 80, false), "✓")
}

func TestBrowseModel_RatingsShown(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, ratingsMsg{"JM001": 3.7})

	require.Contains(t, m.formatProduct(testProducts[0], 80, false), "★★★☆☆")
	require.Contains(t, m.formatProduct(testProducts[1], 80, false), "☆☆☆☆☆")
}

func TestBrowseModel_CheckoutFlow(t *testing.T) {
	m, st := newTestModel(t)
	require.NoError(t, st.AddToCart("JM001"))
	require.NoError(t, st.AddToCart("JM001"))

	lines, err := st.ListCart()
	require.NoError(t, err)
	m = update(t, m, cartLinesMsg(lines))
	m = update(t, m, keyRunes("c"))

	m = update(t, m, keyRunes("o"))
	require.True(t, m.showConfirm)
	require.Contains(t, m.confirm.Message, "2 items")
	require.Contains(t, m.confirm.Message, "$59980")
	require.Contains(t, m.View(), "Place order?")

	m = update(t, m, components.ConfirmResult{ID: checkoutConfirmID, Confirmed: false})
	require.False(t, m.showConfirm)

	m = update(t, m, keyRunes("o"))
	next, cmd := m.Update(components.ConfirmResult{ID: checkoutConfirmID, Confirmed: true})
	require.NotNil(t, cmd)
	m = update(t, next.(browseModel), cmd())

	require.NotNil(t, m.ordered)
	require.Equal(t, int64(59980), m.ordered.Total)
	require.Contains(t, m.message, "placed")

	codes, err := st.CartCodes()
	require.NoError(t, err)
	require.Empty(t, codes)
}

func TestBrowseModel_CheckoutEmptyCart(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, keyRunes("c"))

	m = update(t, m, keyRunes("o"))

	require.False(t, m.showConfirm)
	require.Equal(t, "Your cart is empty", m.message)
}

func TestBrowseModel_RemoveFromCart(t *testing.T) {
	m, st := newTestModel(t)
	require.NoError(t, st.AddToCart("MS001"))
	lines, err := st.ListCart()
	require.NoError(t, err)
	m = update(t, m, cartLinesMsg(lines))
	m = update(t, m, keyRunes("c"))

	_, cmd := m.Update(keyRunes("d"))
	require.NotNil(t, cmd)
	cmd()

	codes, err := st.CartCodes()
	require.NoError(t, err)
	require.Empty(t, codes)
}

func TestBrowseModel_Drawer(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, keyRunes("b"))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.drawerOpen)
	require.Contains(t, m.View(), "Code:")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.drawerOpen)
}

func TestBrowseModel_ViewStates(t *testing.T) {
	m, _ := newTestModel(t)

	require.Contains(t, m.View(), "Level-Up Gamer")
	require.Contains(t, m.View(), "Featured")

	m = update(t, m, keyRunes("b"))
	require.Contains(t, m.View(), "Categories")

	m = update(t, m, productsMsg(nil))
	require.Contains(t, m.View(), "lu catalog seed")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	loading := newBrowseModel(ctx, testutil.NewTestStore(t), settings{}, nil, nil)
	require.Equal(t, "Loading...", loading.View())
}

func TestBrowseModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBrowseModel_LiveProductsFromStore(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := m.Init()
	require.NotNil(t, cmd)

	// the first product emission is the current catalog
	msg := m.waitProducts()()
	products, ok := msg.(productsMsg)
	require.True(t, ok)
	require.Len(t, products, len(testProducts))
}
