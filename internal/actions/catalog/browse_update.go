package catalog

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/ui/components"
)

const checkoutConfirmID = "checkout"

// Update implements tea.Model
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case productsMsg:
		m.products = []domain.Product(msg)
		m.loaded = true
		m.refreshFeatured()
		m.syncCategoryIdx()
		m.clampCursor()
		// prices and stock shown in the cart come from products
		return m, tea.Batch(m.waitProducts(), m.loadCartLines())

	case ratingsMsg:
		m.ratings = map[string]float64(msg)
		return m, m.waitRatings()

	case cartCodesMsg:
		m.cartCodes = []string(msg)
		return m, tea.Batch(m.waitCart(), m.loadCartLines())

	case cartLinesMsg:
		m.cartLines = []domain.CartLine(msg)
		m.clampCursor()
		return m, nil

	case resultMsg:
		if msg.err != nil {
			m.setMessage(describeError(msg.err), true)
			return m, nil
		}
		m.setMessage(msg.text, false)
		if msg.order != nil {
			m.ordered = msg.order
			m.setMessage("Order "+msg.order.ID+" placed, total "+m.price(msg.order.Total), false)
		}
		return m, nil

	case components.ConfirmResult:
		m.showConfirm = false
		if msg.ID == checkoutConfirmID && msg.Confirmed {
			return m, m.checkout()
		}
		return m, nil
	}

	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showConfirm {
		updated, cmd := m.confirm.Update(msg)
		m.confirm = updated.(components.ThemedConfirm)
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.drawerOpen {
		return m.handleDrawerKey(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.cursor = 0
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.focusSidebar {
			m.focusSidebar = false
			return m, nil
		}
		if _, ok := m.selected(); ok {
			m.drawerOpen = true
		}
		return m, nil

	case tea.KeyTab:
		if m.route == routeCatalog {
			m.focusSidebar = !m.focusSidebar
		}
		return m, nil

	case tea.KeyUp:
		m.move(-1)
		return m, nil

	case tea.KeyDown:
		m.move(1)
		return m, nil

	case tea.KeyPgUp:
		m.move(-10)
		return m, nil

	case tea.KeyPgDown:
		m.move(10)
		return m, nil

	case tea.KeyRunes:
		return m.handleRunes(msg)
	}

	return m, nil
}

func (m browseModel) handleRunes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j":
		m.move(1)
	case "k":
		m.move(-1)
	case "/":
		if m.route != routeCatalog {
			m.navigate(routeCatalog)
		}
		m.searching = true
		m.focusSidebar = false
		cmd := m.search.Focus()
		return m, cmd
	case "h":
		m.navigate(routeHome)
	case "b":
		m.navigate(routeCatalog)
	case "c":
		m.navigate(routeCart)
	case "r":
		if m.route == routeHome {
			m.reshuffle()
			m.clampCursor()
		}
	case "a":
		cmd := m.addSelected()
		return m, cmd
	case "d", "x":
		if m.route == routeCart {
			if p, ok := m.selected(); ok {
				return m, m.removeFromCart(p.Code)
			}
		}
	case "o":
		if m.route == routeCart {
			return m.confirmCheckout()
		}
	}
	return m, nil
}

func (m browseModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.cursor = 0
		return m, nil
	case tea.KeyEnter, tea.KeyDown, tea.KeyTab:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m browseModel) handleDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.drawerOpen = false
		return m, nil
	case tea.KeyUp:
		m.move(-1)
		return m, nil
	case tea.KeyDown:
		m.move(1)
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.drawerOpen = false
	case "j":
		m.move(1)
	case "k":
		m.move(-1)
	case "a":
		cmd := m.addSelected()
		return m, cmd
	}
	return m, nil
}

func (m browseModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.move(-1)
	case tea.MouseButtonWheelDown:
		m.move(1)
	}
	return m, nil
}

// move shifts the cursor of the focused panel.
func (m *browseModel) move(delta int) {
	if m.focusSidebar && m.route == routeCatalog {
		m.setCategory(m.categoryIdx + delta)
		return
	}

	m.cursor += delta
	m.clampCursor()
}

// addSelected adds the selected product, or opens the cart when the product
// is already in it.
func (m *browseModel) addSelected() tea.Cmd {
	if m.route == routeCart {
		return nil
	}
	p, ok := m.selected()
	if !ok {
		return nil
	}
	if catalog.InCart(p.Code, m.cartCodes) {
		m.navigate(routeCart)
		return nil
	}
	if !catalog.CanAddToCart(p.Quantity) {
		m.setMessage(p.Name+" is out of stock", true)
		return nil
	}
	return m.addToCart(p)
}

func (m browseModel) confirmCheckout() (tea.Model, tea.Cmd) {
	if len(m.cartLines) == 0 {
		m.setMessage("Your cart is empty", true)
		return m, nil
	}

	m.confirm = components.NewThemedConfirm(
		checkoutConfirmID,
		"Place order?",
		"Checkout "+itemCount(m.cartQuantity())+" for "+m.price(m.cartTotal()),
	)
	m.showConfirm = true
	return m, nil
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " items"
}
