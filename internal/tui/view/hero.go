package view

import (
	"strings"

	"github.com/risksurface/risksurface/internal/content"
	"github.com/risksurface/risksurface/internal/tui/styles"
)

// HeroState holds the state needed to render the hero section.
type HeroState struct {
	Hero content.Hero

	// LaunchFocused indicates whether the hero's launch control has focus.
	LaunchFocused bool

	// Width is the available width.
	Width int
}

// RenderHero renders the opening section: eyebrow tag, headline, subtitle,
// and the "Start Analysis" launch control.
func RenderHero(state HeroState) string {
	width := max(state.Width, 20)

	var b strings.Builder
	b.WriteString(styles.Eyebrow.Render(state.Hero.Eyebrow))
	b.WriteString("\n\n")
	b.WriteString(styles.HeroTitle.Width(width).Render(state.Hero.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.HeroSubtitle.Width(width).Render(state.Hero.Subtitle))
	b.WriteString("\n\n")
	b.WriteString(RenderLaunchControl(state.Hero.Launch, state.LaunchFocused))
	return b.String()
}
