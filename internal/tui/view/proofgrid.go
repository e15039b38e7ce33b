package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/risksurface/risksurface/internal/content"
	"github.com/risksurface/risksurface/internal/tui/styles"
)

// ProofGridState holds the state needed to render the proof grid.
type ProofGridState struct {
	Proofs []content.Proof

	// Width is the available width.
	Width int
}

// RenderProofGrid renders the proof grid: one labelled confidence meter per
// claim, filled to the claim's ratio.
func RenderProofGrid(state ProofGridState) string {
	if len(state.Proofs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("▸ Proof"))
	b.WriteString("\n\n")

	barWidth := min(max(state.Width/3, 10), 40)
	meter := progress.New(
		progress.WithSolidFill(string(styles.MeterFillColor)),
		progress.WithoutPercentage(),
	)
	meter.Width = barWidth
	meter.EmptyColor = string(styles.MeterTrackColor)

	for i, p := range state.Proofs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.ProofValue.Render(fmt.Sprintf("%4s", p.Value)))
		b.WriteString("  ")
		b.WriteString(meter.ViewAs(p.Ratio))
		b.WriteString("  ")
		b.WriteString(styles.ProofLabel.Render(p.Label))
	}
	return b.String()
}
