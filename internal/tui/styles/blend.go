package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ParticleColor blends the active theme's far and near particle colors in
// Luv space. Depth 0 (top of the viewport) renders the far color, depth 1
// the near color, so particles lower on screen read as closer.
func ParticleColor(depth float64) lipgloss.Color {
	depth = min(max(depth, 0), 1)
	far, errFar := colorful.Hex(string(ParticleFarColor))
	near, errNear := colorful.Hex(string(ParticleNearColor))
	if errFar != nil || errNear != nil {
		return ParticleNearColor
	}
	return lipgloss.Color(far.BlendLuv(near, depth).Hex())
}

// ParticleStyle returns the render style for a particle at the given depth.
func ParticleStyle(depth float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ParticleColor(depth))
}
