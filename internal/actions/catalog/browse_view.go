package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
	"github.com/levelupgamer/lu/internal/ui/components"
	"github.com/levelupgamer/lu/internal/ui/splitpanel"
)

// View implements tea.Model
func (m browseModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	headerHeight := 3
	footerHeight := 2
	mainHeight := max(m.height-headerHeight-footerHeight, 1)

	cfg := splitpanel.Config{
		SidebarWidthPercent: 0.22,
		SidebarMinWidth:     18,
		SidebarMaxWidth:     28,
		HasDrawer:           true,
		DrawerWidthPercent:  0.4,
	}
	layout := splitpanel.NewLayout(m.width, cfg, m.colors)
	layout.SetFocus(m.focusSidebar && m.route == routeCatalog)
	layout.SetDrawerOpen(m.drawerOpen)

	sidebar := m.buildSidebarPanel()
	content := m.buildContentPanel(layout, mainHeight)

	var main string
	if m.drawerOpen {
		drawer := m.buildDrawerPanel(layout)
		main = layout.RenderWithDrawer(sidebar, content, &drawer, mainHeight)
	} else {
		main = layout.Render(sidebar, content, mainHeight)
	}

	baseView := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), main, m.renderFooter())

	if m.showConfirm {
		return overlay.Composite(
			m.confirm.View(),
			baseView,
			overlay.Center,
			overlay.Center,
			0, 0,
		)
	}

	return baseView
}

func (m browseModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.Info))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.UIActive))

	var tabs []string
	for _, r := range []route{routeHome, routeCatalog, routeCart} {
		label := r.String()
		if r == routeCart && len(m.cartLines) > 0 {
			label = fmt.Sprintf("%s (%d)", label, m.cartQuantity())
		}
		if r == m.route {
			tabs = append(tabs, activeStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, mutedStyle.Render(" "+label+" "))
		}
	}

	content := titleStyle.Render("Level-Up Gamer") + mutedStyle.Render(" | ") + strings.Join(tabs, " ")

	if m.route == routeCatalog && (m.searching || m.search.Value() != "") {
		content += mutedStyle.Render(" | ") + m.search.View()
	}

	if n := m.itemCount(); n > 0 {
		content += mutedStyle.Render(" | ") + activeStyle.Render(fmt.Sprintf("%d", m.cursor+1)) + mutedStyle.Render(fmt.Sprintf("/%d", n))
	}

	return lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(content)
}

func (m browseModel) buildSidebarPanel() splitpanel.Panel {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.Info))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.UIActive))

	var lines []string

	switch m.route {
	case routeCatalog:
		lines = append(lines, headerStyle.Render("Categories"), "")
		counts := map[string]int{domain.AllCategories: len(m.products)}
		for _, p := range m.products {
			counts[p.Category]++
		}
		for i, c := range m.categories() {
			label := fmt.Sprintf("%s (%d)", c, counts[c])
			switch {
			case c == m.category:
				lines = append(lines, selectedStyle.Render("▸ "+label))
			case i == m.categoryIdx && m.focusSidebar:
				lines = append(lines, "  "+label)
			default:
				lines = append(lines, mutedStyle.Render("  "+label))
			}
		}

	case routeHome:
		lines = append(lines,
			headerStyle.Render("Featured"),
			"",
			mutedStyle.Render(fmt.Sprintf("%d of %d products", len(m.featured), len(m.products))),
			mutedStyle.Render("r to reshuffle"),
		)

	case routeCart:
		lines = append(lines,
			headerStyle.Render("Cart"),
			"",
			"Items: "+fmt.Sprintf("%d", m.cartQuantity()),
			"Total: "+lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Price)).Render(m.price(m.cartTotal())),
		)
		if m.ordered != nil {
			lines = append(lines, "", mutedStyle.Render("Last order:"), mutedStyle.Render(m.ordered.ID[:min(8, len(m.ordered.ID))]))
		}
	}

	return splitpanel.Panel{
		Lines:      lines,
		TotalItems: len(lines),
	}
}

func (m browseModel) buildContentPanel(layout *splitpanel.Layout, height int) splitpanel.Panel {
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted)).Italic(true)
	visibleHeight := max(height-2, 1)
	width := layout.MainContentWidth()

	var rows []string
	switch m.route {
	case routeCart:
		for i, l := range m.cartLines {
			rows = append(rows, m.formatCartLine(l, width, i == m.cursor))
		}
	default:
		for i, p := range m.visible() {
			rows = append(rows, m.formatProduct(p, width, i == m.cursor))
		}
	}

	if len(rows) == 0 {
		return splitpanel.Panel{Lines: []string{emptyStyle.Render(m.emptyText())}, TotalItems: 1}
	}

	offset := 0
	if m.cursor >= visibleHeight {
		offset = m.cursor - visibleHeight + 1
	}
	end := min(offset+visibleHeight, len(rows))

	return splitpanel.Panel{
		Lines:      rows[offset:end],
		ScrollPos:  offset,
		TotalItems: len(rows),
	}
}

func (m browseModel) emptyText() string {
	switch {
	case !m.loaded:
		return "Loading products..."
	case len(m.products) == 0:
		return "The catalog is empty. Run 'lu catalog seed' to load the demo catalog."
	case m.route == routeCart:
		return "Your cart is empty. Press b to browse the catalog."
	default:
		return "No products match your search"
	}
}

func (m browseModel) formatProduct(p domain.Product, width int, selected bool) string {
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))
	priceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Price))
	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Star))
	successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Success))

	stars := catalog.StyledRatingBar(m.rating(p.Code), m.settings.maxStars, styled(starStyle), styled(mutedStyle))
	price := m.price(p.Price)

	marker := "  "
	if catalog.InCart(p.Code, m.cartCodes) {
		marker = successStyle.Render("✓ ")
	}

	// name takes whatever the fixed columns leave
	fixed := 2 + 1 + m.settings.maxStars + 1 + lipgloss.Width(price) + 2
	name := format.PadRight(format.Truncate(p.Name, max(width-fixed, 8)), max(width-fixed, 8))

	if selected {
		selStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.UIActive))
		name = selStyle.Render(name)
	} else if !p.InStock() {
		name = mutedStyle.Render(name)
	}

	return marker + name + " " + stars + " " + priceStyle.Render(price)
}

func (m browseModel) formatCartLine(l domain.CartLine, width int, selected bool) string {
	priceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Price))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))

	qty := fmt.Sprintf("%d×", l.Quantity)
	subtotal := m.price(l.Subtotal())

	fixed := len(qty) + 1 + lipgloss.Width(subtotal) + 2
	nameWidth := max(width-fixed, 8)
	name := format.PadRight(format.Truncate(l.Product.Name, nameWidth), nameWidth)

	if selected {
		name = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.UIActive)).Render(name)
	}

	return mutedStyle.Render(qty) + " " + name + " " + priceStyle.Render(subtotal)
}

func (m browseModel) buildDrawerPanel(layout *splitpanel.Layout) splitpanel.Panel {
	p, ok := m.selected()
	if !ok {
		return splitpanel.Panel{}
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.Info))
	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Star))
	width := max(layout.DrawerContentWidth(), 10)

	rating := m.rating(p.Code)
	ratingText := catalog.StyledRatingBar(rating, m.settings.maxStars, styled(starStyle), styled(labelStyle))
	if rating != nil {
		ratingText += labelStyle.Render(fmt.Sprintf(" %.1f", *rating))
	} else {
		ratingText += labelStyle.Render(" no reviews")
	}

	lines := []string{
		titleStyle.Render(format.Truncate(p.Name, width)),
		"",
		labelStyle.Render("Code:     ") + p.Code,
		labelStyle.Render("Category: ") + p.Category,
		labelStyle.Render("Price:    ") + lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Price)).Render(m.price(p.Price)),
		labelStyle.Render("Rating:   ") + ratingText,
		labelStyle.Render("Stock:    ") + fmt.Sprintf("%d", p.Quantity),
	}

	if hint := catalog.StockLabel(p.Quantity, m.settings.lowStockThreshold); hint != "" {
		color := m.colors.Warning
		if !p.InStock() {
			color = m.colors.Error
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(hint))
	}
	if catalog.InCart(p.Code, m.cartCodes) {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Success)).Render("✓ In your cart"))
	}
	if p.Image != "" {
		lines = append(lines, labelStyle.Render("Image:    ")+format.Truncate(p.Image, max(width-10, 4)))
	}
	if p.Description != "" {
		lines = append(lines, "")
		lines = append(lines, wrap(p.Description, width)...)
	}

	return splitpanel.Panel{
		Lines:      lines,
		TotalItems: len(lines),
	}
}

// styled adapts a lipgloss style to a single-string renderer.
func styled(s lipgloss.Style) func(string) string {
	return func(text string) string { return s.Render(text) }
}

// wrap breaks text on spaces so no line exceeds width.
func wrap(text string, width int) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case lipgloss.Width(current)+1+lipgloss.Width(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// addBinding describes "a" for the selected product.
func (m browseModel) addBinding(label string) key.Binding {
	if p, ok := m.selected(); ok && catalog.InCart(p.Code, m.cartCodes) {
		label = "go to cart"
	}
	return key.NewBinding(key.WithKeys("a"), key.WithHelp("a", label))
}

func (m browseModel) renderFooter() string {
	help := components.NewThemedHelp()

	var bindings []key.Binding
	switch {
	case m.showConfirm:
		bindings = components.ConfirmKeyBindings()
	case m.searching:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "done")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "clear")),
		}
	case m.drawerOpen:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "close")),
			key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("jk", "navigate")),
			m.addBinding("add to cart"),
		}
	default:
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
			key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("jk", "nav")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "detail")),
		}
		switch m.route {
		case routeHome:
			bindings = append(bindings,
				m.addBinding("add"),
				key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reshuffle")),
				key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "catalog")),
				key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
			)
		case routeCatalog:
			bindings = append(bindings,
				m.addBinding("add"),
				key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
				key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "categories")),
				key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
				key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
			)
		case routeCart:
			bindings = append(bindings,
				key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
				key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "checkout")),
				key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "catalog")),
				key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
			)
		}
	}

	status := ""
	if m.message != "" {
		color := m.colors.Success
		if m.messageIsError {
			color = m.colors.Error
		}
		status = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(m.message)
	}

	footerStyle := lipgloss.NewStyle().Width(m.width).Padding(0, 1)
	return footerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, status, help.ShortHelpView(bindings)))
}
