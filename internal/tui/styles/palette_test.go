package styles

import (
	"slices"
	"testing"
)

func TestBuiltinThemes(t *testing.T) {
	themes := BuiltinThemes()

	if len(themes) != 3 {
		t.Errorf("Expected 3 built-in themes, got %d", len(themes))
	}

	for _, want := range []string{"default", "midnight", "daybreak"} {
		if !slices.Contains(themes, want) {
			t.Errorf("Expected built-in themes to include %q: %v", want, themes)
		}
	}
}

func TestGetPalette(t *testing.T) {
	tests := []struct {
		name        string
		theme       ThemeName
		wantPrimary string
	}{
		{"default theme", ThemeDefault, "#818CF8"},
		{"midnight theme", ThemeMidnight, "#38BDF8"},
		{"daybreak theme", ThemeDaybreak, "#4F46E5"},
		{"unknown falls back to default", ThemeName("bogus"), "#818CF8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GetPalette(tt.theme)
			if p == nil {
				t.Fatal("GetPalette returned nil")
			}
			if string(p.Primary) != tt.wantPrimary {
				t.Errorf("Primary = %v, want %v", p.Primary, tt.wantPrimary)
			}
		})
	}
}

func TestGetPaletteCustomPrecedence(t *testing.T) {
	ClearCustomThemes()
	defer ClearCustomThemes()

	custom := &ThemeFile{
		Name:    "Ocean",
		Version: "1",
		Colors: ThemeColors{
			Primary:   "#0EA5E9",
			Secondary: "#14B8A6",
			Warning:   "#FBBF24",
			Error:     "#F87171",
			Muted:     "#94A3B8",
			Surface:   "#0C4A6E",
			Text:      "#F0F9FF",
			Border:    "#155E75",
		},
	}
	RegisterCustomTheme("ocean", custom)

	p := GetPalette("ocean")
	if string(p.Primary) != "#0EA5E9" {
		t.Errorf("Primary = %v, want custom color %v", p.Primary, "#0EA5E9")
	}
}

func TestIsValidTheme(t *testing.T) {
	ClearCustomThemes()
	defer ClearCustomThemes()

	tests := []struct {
		name     string
		theme    string
		expected bool
	}{
		{"default is valid", "default", true},
		{"midnight is valid", "midnight", true},
		{"daybreak is valid", "daybreak", true},
		{"unknown is invalid", "neon", false},
		{"empty is invalid", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTheme(tt.theme); got != tt.expected {
				t.Errorf("IsValidTheme(%q) = %v, want %v", tt.theme, got, tt.expected)
			}
		})
	}

	// Registered custom themes become valid
	RegisterCustomTheme("neon", &ThemeFile{Name: "Neon", Version: "1", Colors: ThemeColors{
		Primary: "#FF00FF", Secondary: "#00FFFF", Warning: "#FFFF00", Error: "#FF0000",
		Muted: "#888888", Surface: "#000000", Text: "#FFFFFF", Border: "#444444",
	}})
	if !IsValidTheme("neon") {
		t.Error("Expected registered custom theme to be valid")
	}
	if !slices.Contains(ValidThemes(), "neon") {
		t.Error("Expected ValidThemes to include registered custom theme")
	}
}
