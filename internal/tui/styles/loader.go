package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/risksurface/risksurface/internal/errors"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	// Base colors
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Section colors (optional - defaults to base colors if not specified)
	Sections ThemeSectionColors `yaml:"sections,omitempty"`

	// Particle colors (optional - defaults to primary/secondary)
	Particles ThemeParticleColors `yaml:"particles,omitempty"`
}

// ThemeSectionColors defines colors for specific tour sections.
type ThemeSectionColors struct {
	Eyebrow    string `yaml:"eyebrow,omitempty"`
	MeterFill  string `yaml:"meter_fill,omitempty"`
	MeterTrack string `yaml:"meter_track,omitempty"`
	LaunchBg   string `yaml:"launch_bg,omitempty"`
	LaunchFg   string `yaml:"launch_fg,omitempty"`
}

// ThemeParticleColors defines the decoration field's depth blend endpoints.
type ThemeParticleColors struct {
	Near string `yaml:"near,omitempty"`
	Far  string `yaml:"far,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, errors.NewThemeError("parsing theme file", err).WithPath(path)
	}

	if err := theme.Validate(); err != nil {
		return nil, errors.NewThemeError(err.Error(), errors.ErrThemeInvalid).WithPath(path)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}

	if t.Version == "" {
		return errors.New("theme version is required")
	}

	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	// Validate required base colors
	requiredColors := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"warning":   t.Colors.Warning,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"surface":   t.Colors.Surface,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}

	for name, color := range requiredColors {
		if color == "" {
			return fmt.Errorf("color '%s' is required", name)
		}
		if !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	// Validate optional colors if provided
	optionalColors := map[string]string{
		"sections.eyebrow":     t.Colors.Sections.Eyebrow,
		"sections.meter_fill":  t.Colors.Sections.MeterFill,
		"sections.meter_track": t.Colors.Sections.MeterTrack,
		"sections.launch_bg":   t.Colors.Sections.LaunchBg,
		"sections.launch_fg":   t.Colors.Sections.LaunchFg,
		"particles.near":       t.Colors.Particles.Near,
		"particles.far":        t.Colors.Particles.Far,
	}

	for name, color := range optionalColors {
		if color != "" && !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	// Start with base colors
	p := &ColorPalette{
		Primary:   lipgloss.Color(t.Colors.Primary),
		Secondary: lipgloss.Color(t.Colors.Secondary),
		Warning:   lipgloss.Color(t.Colors.Warning),
		Error:     lipgloss.Color(t.Colors.Error),
		Muted:     lipgloss.Color(t.Colors.Muted),
		Surface:   lipgloss.Color(t.Colors.Surface),
		Text:      lipgloss.Color(t.Colors.Text),
		Border:    lipgloss.Color(t.Colors.Border),
	}

	// Apply section colors (with defaults)
	p.Eyebrow = colorOrDefault(t.Colors.Sections.Eyebrow, t.Colors.Secondary)
	p.MeterFill = colorOrDefault(t.Colors.Sections.MeterFill, t.Colors.Primary)
	p.MeterTrack = colorOrDefault(t.Colors.Sections.MeterTrack, t.Colors.Border)
	p.LaunchBg = colorOrDefault(t.Colors.Sections.LaunchBg, t.Colors.Primary)
	p.LaunchFg = colorOrDefault(t.Colors.Sections.LaunchFg, t.Colors.Surface)

	// Apply particle colors (with defaults)
	p.ParticleNear = colorOrDefault(t.Colors.Particles.Near, t.Colors.Primary)
	p.ParticleFar = colorOrDefault(t.Colors.Particles.Far, t.Colors.Secondary)

	return p
}

// colorOrDefault returns the color if non-empty, otherwise returns the default.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// customThemes stores loaded custom themes.
var customThemes = make(map[ThemeName]*ThemeFile)

// RegisterCustomTheme registers a custom theme by name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customThemes[name] = theme
}

// GetCustomTheme returns a custom theme by name, or nil if not found.
func GetCustomTheme(name ThemeName) *ThemeFile {
	return customThemes[name]
}

// CustomThemeNames returns the names of all registered custom themes.
func CustomThemeNames() []string {
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ClearCustomThemes removes all registered custom themes.
// Primarily used for testing.
func ClearCustomThemes() {
	customThemes = make(map[ThemeName]*ThemeFile)
}

// themesDirFn is the function that returns the themes directory.
// This can be overridden in tests.
var themesDirFn = defaultThemesDir

// defaultThemesDir returns the default themes directory path.
func defaultThemesDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "risksurface", "themes")
	}
	// Fall back to ~/.config/risksurface/themes
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".risksurface", "themes")
	}
	return filepath.Join(home, ".config", "risksurface", "themes")
}

// ThemesDir returns the directory where custom themes are stored.
func ThemesDir() string {
	return themesDirFn()
}

// SetThemesDirFunc sets the function used to determine the themes directory.
// This is primarily useful for testing. Returns the previous function.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFn
	themesDirFn = fn
	return prev
}

// DiscoverCustomThemes scans the themes directory and loads all valid themes.
// Invalid themes are skipped with errors collected for the caller to log.
func DiscoverCustomThemes() ([]string, []error) {
	dir := ThemesDir()

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, []error{fmt.Errorf("creating themes directory: %w", err)}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var loaded []string
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		path := filepath.Join(dir, name)
		theme, err := LoadThemeFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		// Generate theme name from filename (without extension)
		themeName := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")

		// Don't allow custom themes to override built-in themes
		if IsBuiltinTheme(themeName) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", name, themeName))
			continue
		}

		RegisterCustomTheme(ThemeName(themeName), theme)
		loaded = append(loaded, themeName)
	}

	return loaded, errs
}

// ThemeFilePath returns the path a custom theme of the given name would load
// from, and whether such a file currently exists. Both .yaml and .yml
// extensions are checked, in that order.
func ThemeFilePath(name string) (string, bool) {
	dir := ThemesDir()
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return filepath.Join(dir, name+".yaml"), false
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// IsCustomTheme checks if a theme name is a registered custom theme.
func IsCustomTheme(name string) bool {
	_, ok := customThemes[ThemeName(name)]
	return ok
}

// ThemeFileFor returns the definition of a valid theme. Custom themes
// return their loaded file; built-ins are converted to a ThemeFile.
func ThemeFileFor(name ThemeName) (*ThemeFile, error) {
	if !IsValidTheme(string(name)) {
		return nil, errors.NewThemeError("unknown theme", errors.ErrThemeNotFound).WithTheme(string(name))
	}
	if custom := GetCustomTheme(name); custom != nil {
		return custom, nil
	}
	return paletteToThemeFile(string(name), GetPalette(name)), nil
}

// ExportTheme exports a theme to YAML format.
// This can be used to save the current theme or create a template for
// customization.
func ExportTheme(name ThemeName) ([]byte, error) {
	themeFile, err := ThemeFileFor(name)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(themeFile)
}

// paletteToThemeFile converts a ColorPalette to a ThemeFile for export.
func paletteToThemeFile(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:        name,
		Description: fmt.Sprintf("Exported from RiskSurface built-in theme '%s'", name),
		Version:     "1",
		Colors: ThemeColors{
			Primary:   string(p.Primary),
			Secondary: string(p.Secondary),
			Warning:   string(p.Warning),
			Error:     string(p.Error),
			Muted:     string(p.Muted),
			Surface:   string(p.Surface),
			Text:      string(p.Text),
			Border:    string(p.Border),
			Sections: ThemeSectionColors{
				Eyebrow:    string(p.Eyebrow),
				MeterFill:  string(p.MeterFill),
				MeterTrack: string(p.MeterTrack),
				LaunchBg:   string(p.LaunchBg),
				LaunchFg:   string(p.LaunchFg),
			},
			Particles: ThemeParticleColors{
				Near: string(p.ParticleNear),
				Far:  string(p.ParticleFar),
			},
		},
	}
}

// SaveTheme saves a theme to the themes directory. It refuses to overwrite
// an existing theme file.
func SaveTheme(name string, theme *ThemeFile) error {
	dir := ThemesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating themes directory: %w", err)
	}

	if _, exists := ThemeFilePath(name); exists {
		return errors.NewAlreadyExistsError("theme", name).WithCause(errors.ErrThemeExists)
	}

	data, err := yaml.Marshal(theme)
	if err != nil {
		return fmt.Errorf("marshaling theme: %w", err)
	}

	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing theme file: %w", err)
	}

	return nil
}
