package view

import (
	"strings"

	"github.com/risksurface/risksurface/internal/tui/styles"
)

// ProjectsState holds the state needed to render the projects dashboard.
type ProjectsState struct {
	// Brand is the product name for the page title.
	Brand string

	// Spinner is the pre-rendered "awaiting analyzer" spinner frame,
	// empty when motion is reduced.
	Spinner string

	// Width is the available width.
	Width int
}

// RenderProjects renders the placeholder projects dashboard the navigation
// trigger lands on. The analyzer itself is an external collaborator, so the
// dashboard holds an empty state until one connects.
func RenderProjects(state ProjectsState) string {
	width := max(state.Width, 20)

	var b strings.Builder
	b.WriteString(styles.Title.Render(state.Brand + " · Projects"))
	b.WriteString("\n")

	var body strings.Builder
	body.WriteString(styles.EmptyState.Render("No repositories connected."))
	body.WriteString("\n\n")
	if state.Spinner != "" {
		body.WriteString(state.Spinner)
		body.WriteString(" ")
	}
	body.WriteString(styles.Muted.Render("Awaiting analyzer…"))

	b.WriteString(styles.ContentBox.Width(width - 2).Render(body.String()))
	return b.String()
}
