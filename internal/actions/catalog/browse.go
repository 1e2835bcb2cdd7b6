package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/ui/components"
	"github.com/levelupgamer/lu/internal/ui/style"
)

// route is the screen shown by the storefront TUI.
type route int

const (
	routeHome route = iota
	routeCatalog
	routeCart
)

func (r route) String() string {
	switch r {
	case routeHome:
		return "Home"
	case routeCatalog:
		return "Catalog"
	case routeCart:
		return "Cart"
	default:
		return "?"
	}
}

// browse runs the storefront TUI starting at start.
func browse(deps Deps, start route, search, category string) error {
	if deps.IsTerminal != nil && !deps.IsTerminal() {
		return errors.New("interactive catalog requires an interactive terminal")
	}

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := newBrowseModel(ctx, st, loadSettings(deps), deps.Price, deps.Rand)
	m.route = start
	m.search.SetValue(search)
	m.category = category

	final, err := deps.RunProgram(m)
	if err != nil {
		return err
	}

	if fm, ok := final.(browseModel); ok && fm.ordered != nil {
		_, _ = deps.Printf("Order %s placed: %s\n", style.Info(fm.ordered.ID), style.Price(fm.price(fm.ordered.Total)))
	}
	return nil
}

// Messages

type productsMsg []domain.Product

type ratingsMsg map[string]float64

type cartCodesMsg []string

type cartLinesMsg []domain.CartLine

type resultMsg struct {
	text  string
	err   error
	order *domain.Order
}

// browseModel is the Bubble Tea model for the storefront.
type browseModel struct {
	ctx   context.Context
	store domain.Store

	// live data
	productsCh <-chan []domain.Product
	ratingsCh  <-chan map[string]float64
	cartCh     <-chan []string

	products  []domain.Product
	ratings   map[string]float64
	cartCodes []string
	cartLines []domain.CartLine
	loaded    bool

	// featured sample, stable until the catalog changes or the user reshuffles
	featured []domain.Product
	rng      *rand.Rand

	// navigation
	route        route
	category     string
	search       components.ThemedInput
	searching    bool
	focusSidebar bool
	categoryIdx  int
	cursor       int
	drawerOpen   bool

	// checkout confirmation
	showConfirm bool
	confirm     components.ThemedConfirm
	ordered     *domain.Order

	message        string
	messageIsError bool

	settings settings
	price    func(int64) string
	colors   style.ColorConfig
	help     components.ThemedHelp

	width  int
	height int
}

func newBrowseModel(ctx context.Context, st domain.Store, s settings, price func(int64) string, rng *rand.Rand) browseModel {
	if price == nil {
		price = func(amount int64) string { return fmt.Sprintf("$%d", amount) }
	}

	return browseModel{
		ctx:        ctx,
		store:      st,
		productsCh: st.WatchProducts(ctx),
		ratingsCh:  st.WatchAverageRatings(ctx),
		cartCh:     st.WatchCart(ctx),
		ratings:    map[string]float64{},
		rng:        rng,
		category:   domain.AllCategories,
		search:     components.NewThemedInput("search by name"),
		settings:   s,
		price:      price,
		colors:     style.GetColors(),
		help:       components.NewThemedHelp(),
	}
}

// waitFor turns the next value of a live query into a message.
// A closed channel yields no message, which ends that subscription.
func waitFor[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(v)
	}
}

func (m browseModel) waitProducts() tea.Cmd {
	return waitFor(m.productsCh, func(v []domain.Product) tea.Msg { return productsMsg(v) })
}

func (m browseModel) waitRatings() tea.Cmd {
	return waitFor(m.ratingsCh, func(v map[string]float64) tea.Msg { return ratingsMsg(v) })
}

func (m browseModel) waitCart() tea.Cmd {
	return waitFor(m.cartCh, func(v []string) tea.Msg { return cartCodesMsg(v) })
}

// Init implements tea.Model
func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.waitProducts(), m.waitRatings(), m.waitCart())
}

func (m browseModel) loadCartLines() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		lines, err := st.ListCart()
		if err != nil {
			log.Error("browse: list cart: %v", err)
			return nil
		}
		return cartLinesMsg(lines)
	}
}

func (m browseModel) addToCart(p domain.Product) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		if err := st.AddToCart(p.Code); err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{text: p.Name + " added to cart"}
	}
}

func (m browseModel) removeFromCart(code string) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		if _, err := st.RemoveFromCart(code); err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{text: "Removed " + code}
	}
}

func (m browseModel) checkout() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		order, err := st.Checkout()
		if err != nil {
			return resultMsg{err: err}
		}
		log.Info("browse: order %s placed, total %d", order.ID, order.Total)
		return resultMsg{text: "Order placed", order: &order}
	}
}

// Data helpers

// categories returns the sidebar entries.
func (m browseModel) categories() []string {
	return catalog.Categories(m.products)
}

// visible returns the products listed by the current route.
func (m browseModel) visible() []domain.Product {
	switch m.route {
	case routeHome:
		return m.featured
	case routeCatalog:
		return catalog.Filter(m.products, m.search.Value(), m.category)
	default:
		return nil
	}
}

func (m browseModel) itemCount() int {
	if m.route == routeCart {
		return len(m.cartLines)
	}
	return len(m.visible())
}

func (m browseModel) selected() (domain.Product, bool) {
	if m.route == routeCart {
		if m.cursor < len(m.cartLines) {
			return m.cartLines[m.cursor].Product, true
		}
		return domain.Product{}, false
	}

	items := m.visible()
	if m.cursor < len(items) {
		return items[m.cursor], true
	}
	return domain.Product{}, false
}

func (m browseModel) rating(code string) *float64 {
	if r, ok := m.ratings[code]; ok {
		return catalog.Rating(r)
	}
	return nil
}

func (m browseModel) cartTotal() int64 {
	var total int64
	for _, l := range m.cartLines {
		total += l.Subtotal()
	}
	return total
}

func (m browseModel) cartQuantity() int {
	n := 0
	for _, l := range m.cartLines {
		n += l.Quantity
	}
	return n
}

// refreshFeatured keeps the current sample when all of its products still
// exist (updating their stock and price), and draws a new one otherwise.
func (m *browseModel) refreshFeatured() {
	byCode := make(map[string]domain.Product, len(m.products))
	for _, p := range m.products {
		byCode[p.Code] = p
	}

	want := min(m.settings.featuredCount, len(m.products))
	if len(m.featured) == want && want > 0 {
		refreshed := make([]domain.Product, 0, len(m.featured))
		for _, f := range m.featured {
			p, ok := byCode[f.Code]
			if !ok {
				break
			}
			refreshed = append(refreshed, p)
		}
		if len(refreshed) == len(m.featured) {
			m.featured = refreshed
			return
		}
	}

	m.reshuffle()
}

func (m *browseModel) reshuffle() {
	m.featured = catalog.Featured(m.products, m.settings.featuredCount, m.rng)
}

func (m *browseModel) clampCursor() {
	n := m.itemCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if n == 0 {
		m.drawerOpen = false
	}
}

func (m *browseModel) setCategory(idx int) {
	cats := m.categories()
	if len(cats) == 0 {
		return
	}
	idx = max(0, min(idx, len(cats)-1))
	m.categoryIdx = idx
	m.category = cats[idx]
	m.cursor = 0
}

// syncCategoryIdx points the sidebar cursor at the active category.
func (m *browseModel) syncCategoryIdx() {
	if i := slices.Index(m.categories(), m.category); i >= 0 {
		m.categoryIdx = i
	}
}

func (m *browseModel) navigate(r route) {
	m.route = r
	m.cursor = 0
	m.drawerOpen = false
	m.focusSidebar = false
	m.message = ""
}

func (m *browseModel) setMessage(text string, isError bool) {
	m.message = text
	m.messageIsError = isError
}

// describeError turns store errors into a status line.
func describeError(err error) string {
	var stockErr *domain.StockError
	switch {
	case errors.As(err, &stockErr):
		return stockErr.Error()
	case errors.Is(err, domain.ErrEmptyCart):
		return "Your cart is empty"
	case errors.Is(err, domain.ErrProductNotFound):
		return "Product no longer exists"
	default:
		return "Error: " + err.Error()
	}
}
