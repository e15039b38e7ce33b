package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color palette.
// This allows styles to be regenerated when the theme changes.
type ThemedStyles struct {
	// Colors from the palette
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	WarningColor   lipgloss.Color
	ErrorColor     lipgloss.Color
	MutedColor     lipgloss.Color
	SurfaceColor   lipgloss.Color
	TextColor      lipgloss.Color
	BorderColor    lipgloss.Color

	// Section colors
	EyebrowColor    lipgloss.Color
	MeterFillColor  lipgloss.Color
	MeterTrackColor lipgloss.Color
	LaunchBgColor   lipgloss.Color
	LaunchFgColor   lipgloss.Color

	// Particle depth blend endpoints
	ParticleNearColor lipgloss.Color
	ParticleFarColor  lipgloss.Color

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Surface   lipgloss.Style
	Text      lipgloss.Style

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Navbar
	NavBrand      lipgloss.Style
	NavItem       lipgloss.Style
	NavItemActive lipgloss.Style

	// Hero
	Eyebrow      lipgloss.Style
	HeroTitle    lipgloss.Style
	HeroSubtitle lipgloss.Style

	// Sections
	SectionHeader lipgloss.Style

	// Methodology cards
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardBody  lipgloss.Style
	CardStat  lipgloss.Style

	// Cognitive panel
	CognitiveBox  lipgloss.Style
	FindingMarker lipgloss.Style

	// Proof grid
	ProofLabel lipgloss.Style
	ProofValue lipgloss.Style

	// Launch controls
	Launch        lipgloss.Style
	LaunchFocused lipgloss.Style

	// Footer
	FooterColumnTitle lipgloss.Style
	FooterLink        lipgloss.Style
	Legal             lipgloss.Style

	// Content area
	ContentBox lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Empty state
	EmptyState lipgloss.Style

	// Spinner
	Spinner lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		// Store colors for direct access
		PrimaryColor:   p.Primary,
		SecondaryColor: p.Secondary,
		WarningColor:   p.Warning,
		ErrorColor:     p.Error,
		MutedColor:     p.Muted,
		SurfaceColor:   p.Surface,
		TextColor:      p.Text,
		BorderColor:    p.Border,

		EyebrowColor:    p.Eyebrow,
		MeterFillColor:  p.MeterFill,
		MeterTrackColor: p.MeterTrack,
		LaunchBgColor:   p.LaunchBg,
		LaunchFgColor:   p.LaunchFg,

		ParticleNearColor: p.ParticleNear,
		ParticleFarColor:  p.ParticleFar,
	}

	// Build all the styles
	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Surface = lipgloss.NewStyle().Background(p.Surface)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.NavBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.NavItem = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	s.NavItemActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 2)

	s.Eyebrow = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Eyebrow)

	s.HeroTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.HeroSubtitle = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.CardBody = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.CardStat = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Italic(true)

	s.CognitiveBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)

	s.FindingMarker = lipgloss.NewStyle().
		Foreground(p.Secondary)

	s.ProofLabel = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.ProofValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Launch = lipgloss.NewStyle().
		Foreground(p.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 3)

	s.LaunchFocused = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.LaunchFg).
		Background(p.LaunchBg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.LaunchBg).
		Padding(0, 3)

	s.FooterColumnTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.FooterLink = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Legal = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.EmptyState = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	s.Spinner = lipgloss.NewStyle().
		Foreground(p.Secondary)

	s.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	s.SuccessMsg = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)

	return s
}

// activeTheme holds the currently active themed styles.
// This is set via SetActiveTheme and provides backwards compatibility
// with code that uses the global style variables.
var activeTheme *ThemedStyles

func init() {
	// Initialize with default theme
	activeTheme = NewThemedStyles(DefaultPalette())
}

// SetActiveTheme updates the active theme to the specified theme name.
// This updates all the global style variables to use the new theme colors.
//
// Note: This function is not thread-safe. It is designed to be called only
// from the Bubble Tea event loop, which runs on a single goroutine.
func SetActiveTheme(name ThemeName) {
	palette := GetPalette(name)
	activeTheme = NewThemedStyles(palette)
	syncGlobalStyles()
}

// GetActiveTheme returns the currently active themed styles.
func GetActiveTheme() *ThemedStyles {
	return activeTheme
}

// syncGlobalStyles updates the global style variables to match the active
// theme. This maintains backwards compatibility with existing code that uses
// the package-level style variables directly.
func syncGlobalStyles() {
	// Update colors
	PrimaryColor = activeTheme.PrimaryColor
	SecondaryColor = activeTheme.SecondaryColor
	WarningColor = activeTheme.WarningColor
	ErrorColor = activeTheme.ErrorColor
	MutedColor = activeTheme.MutedColor
	SurfaceColor = activeTheme.SurfaceColor
	TextColor = activeTheme.TextColor
	BorderColor = activeTheme.BorderColor

	EyebrowColor = activeTheme.EyebrowColor
	MeterFillColor = activeTheme.MeterFillColor
	MeterTrackColor = activeTheme.MeterTrackColor
	LaunchBgColor = activeTheme.LaunchBgColor
	LaunchFgColor = activeTheme.LaunchFgColor

	ParticleNearColor = activeTheme.ParticleNearColor
	ParticleFarColor = activeTheme.ParticleFarColor

	// Update convenience styles
	Primary = activeTheme.Primary
	Secondary = activeTheme.Secondary
	Warning = activeTheme.Warning
	Error = activeTheme.Error
	Muted = activeTheme.Muted
	Surface = activeTheme.Surface
	Text = activeTheme.Text

	// Update base styles
	Title = activeTheme.Title
	Subtitle = activeTheme.Subtitle

	// Update navbar styles
	NavBrand = activeTheme.NavBrand
	NavItem = activeTheme.NavItem
	NavItemActive = activeTheme.NavItemActive

	// Update hero styles
	Eyebrow = activeTheme.Eyebrow
	HeroTitle = activeTheme.HeroTitle
	HeroSubtitle = activeTheme.HeroSubtitle

	// Update section styles
	SectionHeader = activeTheme.SectionHeader

	// Update card styles
	Card = activeTheme.Card
	CardTitle = activeTheme.CardTitle
	CardBody = activeTheme.CardBody
	CardStat = activeTheme.CardStat

	// Update cognitive panel styles
	CognitiveBox = activeTheme.CognitiveBox
	FindingMarker = activeTheme.FindingMarker

	// Update proof grid styles
	ProofLabel = activeTheme.ProofLabel
	ProofValue = activeTheme.ProofValue

	// Update launch control styles
	Launch = activeTheme.Launch
	LaunchFocused = activeTheme.LaunchFocused

	// Update footer styles
	FooterColumnTitle = activeTheme.FooterColumnTitle
	FooterLink = activeTheme.FooterLink
	Legal = activeTheme.Legal

	// Update content box
	ContentBox = activeTheme.ContentBox

	// Update help styles
	HelpBar = activeTheme.HelpBar
	HelpKey = activeTheme.HelpKey

	// Update empty state
	EmptyState = activeTheme.EmptyState

	// Update spinner
	Spinner = activeTheme.Spinner

	// Update messages
	ErrorMsg = activeTheme.ErrorMsg
	SuccessMsg = activeTheme.SuccessMsg
}
