package view

import "github.com/risksurface/risksurface/internal/tui/styles"

// RenderLaunchControl renders one launch control as a bordered button.
// The hero, call-to-action, and footer each carry one; all of them resolve
// to the same start-analysis command when activated.
func RenderLaunchControl(label string, focused bool) string {
	if focused {
		return styles.LaunchFocused.Render(label)
	}
	return styles.Launch.Render(label)
}
