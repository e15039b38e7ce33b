package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on dark surfaces
	PrimaryColor   = lipgloss.Color("#818CF8") // Indigo (indigo-400)
	SecondaryColor = lipgloss.Color("#34D399") // Emerald (emerald-400)
	WarningColor   = lipgloss.Color("#FBBF24") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red (red-400)
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#111827") // Gray-900
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#374151") // Gray-700

	// Section colors
	EyebrowColor    = lipgloss.Color("#34D399") // Emerald
	MeterFillColor  = lipgloss.Color("#818CF8") // Indigo
	MeterTrackColor = lipgloss.Color("#374151") // Gray-700
	LaunchBgColor   = lipgloss.Color("#818CF8") // Indigo
	LaunchFgColor   = lipgloss.Color("#111827") // Gray-900

	// Particle depth blend endpoints
	ParticleNearColor = lipgloss.Color("#818CF8") // Indigo
	ParticleFarColor  = lipgloss.Color("#34D399") // Emerald

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Surface   = lipgloss.NewStyle().Background(SurfaceColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Navbar styles
	NavBrand = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	NavItem = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 2)

	NavItemActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	// Hero styles
	Eyebrow = lipgloss.NewStyle().
		Bold(true).
		Foreground(EyebrowColor)

	HeroTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	HeroSubtitle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Section header ("▸ Methodology")
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	// Methodology card styles
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	CardTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	CardBody = lipgloss.NewStyle().
			Foreground(MutedColor)

	CardStat = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	// Cognitive panel styles
	CognitiveBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)

	FindingMarker = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// Proof grid styles
	ProofLabel = lipgloss.NewStyle().
			Foreground(MutedColor)

	ProofValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// Launch control styles
	Launch = lipgloss.NewStyle().
		Foreground(TextColor).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 3)

	LaunchFocused = lipgloss.NewStyle().
			Bold(true).
			Foreground(LaunchFgColor).
			Background(LaunchBgColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(LaunchBgColor).
			Padding(0, 3)

	// Footer styles
	FooterColumnTitle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SecondaryColor)

	FooterLink = lipgloss.NewStyle().
			Foreground(MutedColor)

	Legal = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Empty state (projects placeholder)
	EmptyState = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Spinner
	Spinner = lipgloss.NewStyle().
		Foreground(SecondaryColor)

	// Messages (CLI output)
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)
)
