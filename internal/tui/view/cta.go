package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/risksurface/risksurface/internal/content"
	"github.com/risksurface/risksurface/internal/tui/styles"
)

// CTAState holds the state needed to render the call-to-action section.
type CTAState struct {
	CTA content.CTA

	// LaunchFocused indicates whether the CTA's launch control has focus.
	LaunchFocused bool

	// Width is the available width.
	Width int
}

// RenderCTA renders the closing call-to-action: headline, body copy, and
// the "Initialize System" launch control, centered in a bordered box.
func RenderCTA(state CTAState) string {
	var body strings.Builder
	body.WriteString(styles.HeroTitle.Render(state.CTA.Title))
	body.WriteString("\n\n")
	body.WriteString(styles.Muted.Render(state.CTA.Body))
	body.WriteString("\n\n")
	body.WriteString(RenderLaunchControl(state.CTA.Launch, state.LaunchFocused))

	return styles.ContentBox.
		Width(max(state.Width-2, 20)).
		Align(lipgloss.Center).
		Render(body.String())
}
