package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault  ThemeName = "default"  // Indigo/emerald dark theme
	ThemeMidnight ThemeName = "midnight" // Deep blue-black with sky accents
	ThemeDaybreak ThemeName = "daybreak" // Light theme for bright terminals
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMidnight),
		string(ThemeDaybreak),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
// All colors should meet WCAG AA contrast requirements (4.5:1 ratio).
type ColorPalette struct {
	// Primary accent color (brand name, active nav item, meters)
	Primary lipgloss.Color
	// Secondary accent color (section markers, stats)
	Secondary lipgloss.Color
	// Warning color (attention-needed states)
	Warning lipgloss.Color
	// Error color (failures)
	Error lipgloss.Color
	// Muted color (de-emphasized text)
	Muted lipgloss.Color
	// Surface color (panel backgrounds)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (panel borders, meter tracks)
	Border lipgloss.Color

	// Section-specific colors
	Eyebrow    lipgloss.Color // hero eyebrow tag
	MeterFill  lipgloss.Color // filled portion of proof meters
	MeterTrack lipgloss.Color // empty portion of proof meters
	LaunchBg   lipgloss.Color // focused launch control background
	LaunchFg   lipgloss.Color // focused launch control text

	// Particle depth blend endpoints. The decoration field blends these
	// by vertical position: particles near the top of the viewport render
	// ParticleFar, particles near the bottom render ParticleNear.
	ParticleNear lipgloss.Color
	ParticleFar  lipgloss.Color
}

// DefaultPalette returns the default indigo/emerald dark theme palette.
// This is the RiskSurface brand theme.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#818CF8"), // Indigo (indigo-400)
		Secondary: lipgloss.Color("#34D399"), // Emerald (emerald-400)
		Warning:   lipgloss.Color("#FBBF24"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#111827"), // Gray-900
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#374151"), // Gray-700

		Eyebrow:    lipgloss.Color("#34D399"), // Emerald
		MeterFill:  lipgloss.Color("#818CF8"), // Indigo
		MeterTrack: lipgloss.Color("#374151"), // Gray-700
		LaunchBg:   lipgloss.Color("#818CF8"), // Indigo
		LaunchFg:   lipgloss.Color("#111827"), // Gray-900

		ParticleNear: lipgloss.Color("#818CF8"), // Indigo
		ParticleFar:  lipgloss.Color("#34D399"), // Emerald
	}
}

// MidnightPalette returns the deep blue-black theme palette.
func MidnightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#38BDF8"), // Sky (sky-400)
		Secondary: lipgloss.Color("#A78BFA"), // Violet (violet-400)
		Warning:   lipgloss.Color("#FBBF24"), // Amber
		Error:     lipgloss.Color("#FB7185"), // Rose (rose-400)
		Muted:     lipgloss.Color("#64748B"), // Slate-500
		Surface:   lipgloss.Color("#0B1120"), // Near-black blue
		Text:      lipgloss.Color("#E2E8F0"), // Slate-200
		Border:    lipgloss.Color("#1E293B"), // Slate-800

		Eyebrow:    lipgloss.Color("#38BDF8"), // Sky
		MeterFill:  lipgloss.Color("#38BDF8"), // Sky
		MeterTrack: lipgloss.Color("#1E293B"), // Slate-800
		LaunchBg:   lipgloss.Color("#38BDF8"), // Sky
		LaunchFg:   lipgloss.Color("#0B1120"), // Near-black blue

		ParticleNear: lipgloss.Color("#38BDF8"), // Sky
		ParticleFar:  lipgloss.Color("#A78BFA"), // Violet
	}
}

// DaybreakPalette returns the light theme palette for bright terminals.
func DaybreakPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#4F46E5"), // Indigo (indigo-600)
		Secondary: lipgloss.Color("#059669"), // Emerald (emerald-600)
		Warning:   lipgloss.Color("#D97706"), // Amber-600
		Error:     lipgloss.Color("#DC2626"), // Red-600
		Muted:     lipgloss.Color("#64748B"), // Slate-500
		Surface:   lipgloss.Color("#F8FAFC"), // Slate-50
		Text:      lipgloss.Color("#0F172A"), // Slate-900
		Border:    lipgloss.Color("#CBD5E1"), // Slate-300

		Eyebrow:    lipgloss.Color("#059669"), // Emerald
		MeterFill:  lipgloss.Color("#4F46E5"), // Indigo
		MeterTrack: lipgloss.Color("#CBD5E1"), // Slate-300
		LaunchBg:   lipgloss.Color("#4F46E5"), // Indigo
		LaunchFg:   lipgloss.Color("#F8FAFC"), // Slate-50

		ParticleNear: lipgloss.Color("#4F46E5"), // Indigo
		ParticleFar:  lipgloss.Color("#059669"), // Emerald
	}
}

// GetPalette returns the color palette for the given theme name.
// Custom themes take precedence; unknown names fall back to the default
// palette.
func GetPalette(theme ThemeName) *ColorPalette {
	if custom := GetCustomTheme(theme); custom != nil {
		return custom.ToPalette()
	}

	switch theme {
	case ThemeMidnight:
		return MidnightPalette()
	case ThemeDaybreak:
		return DaybreakPalette()
	default:
		return DefaultPalette()
	}
}
