package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderNavbar(t *testing.T) {
	output := RenderNavbar(NavbarState{
		Brand:  "RiskSurface",
		Items:  []string{"Overview", "Methodology", "Proof"},
		Active: 1,
		Width:  80,
	})

	if !strings.Contains(output, "RiskSurface") {
		t.Error("expected brand to be present")
	}
	for _, label := range []string{"Overview", "Methodology", "Proof"} {
		if !strings.Contains(output, label) {
			t.Errorf("expected nav label %q to be present", label)
		}
	}
	if strings.Contains(output, "\n") {
		t.Error("expected navbar to render on a single line")
	}
}

func TestRenderNavbarNarrow(t *testing.T) {
	// A width smaller than the content clips the line instead of letting
	// the terminal wrap it.
	output := RenderNavbar(NavbarState{
		Brand:  "RiskSurface",
		Items:  []string{"Overview", "Methodology", "Analyst", "Proof", "Access"},
		Active: 0,
		Width:  10,
	})

	if strings.Contains(output, "\n") {
		t.Error("expected navbar to render on a single line")
	}
	if got := lipgloss.Width(output); got > 10 {
		t.Errorf("expected navbar clipped to 10 columns, got %d", got)
	}
}

func TestRenderNavbarZeroWidthLeftAlone(t *testing.T) {
	output := RenderNavbar(NavbarState{
		Brand:  "RiskSurface",
		Items:  []string{"Overview"},
		Active: -1,
	})

	if !strings.Contains(output, "RiskSurface") || !strings.Contains(output, "Overview") {
		t.Error("expected unclipped navbar when no width is known")
	}
}
