package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/risksurface/risksurface/internal/content"
	"github.com/risksurface/risksurface/internal/tui/styles"
)

// MethodologyState holds the state needed to render the methodology grid.
type MethodologyState struct {
	Features []content.Feature

	// Width is the available width.
	Width int
}

// minCardWidth is the narrowest a methodology card renders side by side;
// below this the grid stacks vertically.
const minCardWidth = 24

// RenderMethodology renders the methodology grid: one card per signal
// family, side by side when the viewport allows, stacked otherwise.
func RenderMethodology(state MethodologyState) string {
	n := len(state.Features)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("▸ Methodology"))
	b.WriteString("\n\n")

	// Border eats two columns per card.
	cardWidth := state.Width/n - 2
	if cardWidth >= minCardWidth {
		cards := make([]string, 0, n)
		for _, f := range state.Features {
			cards = append(cards, renderCard(f, cardWidth))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	} else {
		for i, f := range state.Features {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(renderCard(f, max(state.Width-2, minCardWidth)))
		}
	}
	return b.String()
}

func renderCard(f content.Feature, width int) string {
	var b strings.Builder
	b.WriteString(styles.CardTitle.Render(f.Icon + " " + f.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.CardBody.Render(f.Description))
	b.WriteString("\n\n")
	b.WriteString(styles.CardStat.Render(f.Stat))
	return styles.Card.Width(width).Render(b.String())
}
