package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/risksurface/risksurface/internal/content"
	"github.com/risksurface/risksurface/internal/tui/styles"
)

// FooterState holds the state needed to render the footer.
type FooterState struct {
	Footer content.Footer

	// LaunchFocused indicates whether the footer's launch control has focus.
	LaunchFocused bool

	// Width is the available width.
	Width int
}

// RenderFooter renders the closing section: link columns, the footer launch
// control, and the legal line.
func RenderFooter(state FooterState) string {
	var b strings.Builder

	columns := make([]string, 0, len(state.Footer.Columns))
	for _, col := range state.Footer.Columns {
		var c strings.Builder
		c.WriteString(styles.FooterColumnTitle.Render(col.Title))
		for _, link := range col.Links {
			c.WriteString("\n")
			c.WriteString(styles.FooterLink.Render(link))
		}
		columns = append(columns, lipgloss.NewStyle().MarginRight(6).Render(c.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n\n")
	b.WriteString(RenderLaunchControl(state.Footer.Launch, state.LaunchFocused))
	b.WriteString("\n\n")
	b.WriteString(styles.Legal.Render(state.Footer.Legal))
	return b.String()
}
