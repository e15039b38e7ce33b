package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/risksurface/risksurface/internal/tui/styles"
	"github.com/risksurface/risksurface/internal/util"
)

// NavbarState holds the state needed to render the navbar.
type NavbarState struct {
	// Brand is the product name shown on the left.
	Brand string

	// Items are the nav labels in order.
	Items []string

	// Active is the index of the highlighted item, or -1 for none.
	Active int

	// Width is the available width.
	Width int
}

// RenderNavbar renders the top navigation bar: brand on the left, nav items
// on the right, the active item highlighted.
func RenderNavbar(state NavbarState) string {
	brand := styles.NavBrand.Render("◢ " + state.Brand)

	items := make([]string, 0, len(state.Items))
	for i, label := range state.Items {
		if i == state.Active {
			items = append(items, styles.NavItemActive.Render(label))
		} else {
			items = append(items, styles.NavItem.Render(label))
		}
	}
	nav := strings.Join(items, "")

	gap := state.Width - lipgloss.Width(brand) - lipgloss.Width(nav)
	if gap < 1 {
		gap = 1
	}

	line := brand + strings.Repeat(" ", gap) + nav
	if state.Width > 0 && lipgloss.Width(line) > state.Width {
		line = util.TruncateANSI(line, state.Width)
	}
	return line
}
