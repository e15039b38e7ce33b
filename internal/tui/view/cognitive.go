package view

import (
	"fmt"
	"strings"

	"github.com/risksurface/risksurface/internal/content"
	"github.com/risksurface/risksurface/internal/tui/styles"
)

// CognitiveState holds the state needed to render the Cognitive Layer panel.
type CognitiveState struct {
	// Panel is the authored panel content; nil when the active revision
	// has no cognitive section.
	Panel *content.CognitivePanel

	// Pulse is the pre-rendered spinner frame following the header,
	// empty when motion is reduced.
	Pulse string

	// Width is the available width.
	Width int
}

// RenderCognitive renders the AI Analyst narrative panel. Returns the empty
// string when the revision carries no cognitive section.
func RenderCognitive(state CognitiveState) string {
	if state.Panel == nil {
		return ""
	}
	p := state.Panel

	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("▸ " + p.Title))
	if state.Pulse != "" {
		b.WriteString(" ")
		b.WriteString(state.Pulse)
	}
	b.WriteString("\n\n")

	var body strings.Builder
	body.WriteString(styles.Text.Render(p.Intro))
	body.WriteString("\n\n")
	body.WriteString(styles.Muted.Render(p.Narrative))
	body.WriteString("\n\n")
	for _, finding := range p.Findings {
		body.WriteString(styles.FindingMarker.Render("▪ "))
		body.WriteString(styles.Text.Render(finding))
		body.WriteString("\n")
	}
	body.WriteString("\n")
	confidence := fmt.Sprintf("%d%% confidence", int(p.Confidence*100+0.5))
	body.WriteString(styles.ProofValue.Render(confidence))

	b.WriteString(styles.CognitiveBox.Width(max(state.Width-2, 20)).Render(body.String()))
	return b.String()
}
