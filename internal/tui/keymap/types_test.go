package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyBindingMatches(t *testing.T) {
	tests := []struct {
		name     string
		binding  KeyBinding
		msg      tea.KeyMsg
		expected bool
	}{
		{
			name: "simple rune match",
			binding: KeyBinding{
				KeyType: tea.KeyRunes,
				Rune:    'j',
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'j'},
			},
			expected: true,
		},
		{
			name: "simple rune mismatch",
			binding: KeyBinding{
				KeyType: tea.KeyRunes,
				Rune:    'j',
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'k'},
			},
			expected: false,
		},
		{
			name: "special key match",
			binding: KeyBinding{
				KeyType: tea.KeyEnter,
			},
			msg: tea.KeyMsg{
				Type: tea.KeyEnter,
			},
			expected: true,
		},
		{
			name: "special key mismatch",
			binding: KeyBinding{
				KeyType: tea.KeyEnter,
			},
			msg: tea.KeyMsg{
				Type: tea.KeyEsc,
			},
			expected: false,
		},
		{
			name: "uppercase rune is distinct",
			binding: KeyBinding{
				KeyType: tea.KeyRunes,
				Rune:    'G',
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'g'},
			},
			expected: false,
		},
		{
			name: "alt modifier match",
			binding: KeyBinding{
				KeyType:   tea.KeyRunes,
				Rune:      'x',
				Modifiers: ModAlt,
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'x'},
				Alt:   true,
			},
			expected: true,
		},
		{
			name: "alt modifier mismatch - binding doesn't want alt",
			binding: KeyBinding{
				KeyType: tea.KeyRunes,
				Rune:    'x',
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'x'},
				Alt:   true,
			},
			expected: false,
		},
		{
			name: "ctrl key type",
			binding: KeyBinding{
				KeyType: tea.KeyCtrlD,
			},
			msg: tea.KeyMsg{
				Type: tea.KeyCtrlD,
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.binding.Matches(tt.msg)
			if result != tt.expected {
				t.Errorf("KeyBinding.Matches() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestKeymapGetBinding(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		mode    Mode
		wantCmd Command
		wantHit bool
	}{
		{
			name:    "j scrolls down on landing",
			msg:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
			mode:    ModeLanding,
			wantCmd: CmdScrollDown,
			wantHit: true,
		},
		{
			name:    "s starts analysis on landing",
			msg:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}},
			mode:    ModeLanding,
			wantCmd: CmdStartAnalysis,
			wantHit: true,
		},
		{
			name:    "enter activates focused control on landing",
			msg:     tea.KeyMsg{Type: tea.KeyEnter},
			mode:    ModeLanding,
			wantCmd: CmdActivate,
			wantHit: true,
		},
		{
			name:    "digit jumps to section on landing",
			msg:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}},
			mode:    ModeLanding,
			wantCmd: CmdJumpToSection,
			wantHit: true,
		},
		{
			name:    "b is unbound on landing",
			msg:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}},
			mode:    ModeLanding,
			wantHit: false,
		},
		{
			name:    "b goes back on projects",
			msg:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}},
			mode:    ModeProjects,
			wantCmd: CmdBack,
			wantHit: true,
		},
		{
			name:    "esc goes back on projects",
			msg:     tea.KeyMsg{Type: tea.KeyEsc},
			mode:    ModeProjects,
			wantCmd: CmdBack,
			wantHit: true,
		},
		{
			name:    "s is unbound on projects",
			msg:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}},
			mode:    ModeProjects,
			wantHit: false,
		},
		{
			name:    "unknown mode finds nothing",
			msg:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
			mode:    Mode("bogus"),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, found := km.GetBinding(tt.msg, tt.mode)
			if found != tt.wantHit {
				t.Fatalf("GetBinding() found = %v, want %v", found, tt.wantHit)
			}
			if found && cmd != tt.wantCmd {
				t.Errorf("GetBinding() = %s, want %s", cmd, tt.wantCmd)
			}
		})
	}
}

func TestModifiersString(t *testing.T) {
	tests := []struct {
		mods     Modifier
		expected string
	}{
		{ModNone, ""},
		{ModCtrl, "ctrl+"},
		{ModAlt, "alt+"},
		{ModShift, "shift+"},
		{ModCtrl | ModAlt, "ctrl+alt+"},
		{ModCtrl | ModAlt | ModShift, "ctrl+alt+shift+"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.mods.String()
			if result != tt.expected {
				t.Errorf("Modifier.String() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding  KeyBinding
		expected string
	}{
		{
			binding:  KeyBinding{KeyType: tea.KeyEnter},
			expected: "enter",
		},
		{
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'},
			expected: "j",
		},
		{
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: ' '},
			expected: "space",
		},
		{
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt},
			expected: "alt+x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.binding.String()
			if result != tt.expected {
				t.Errorf("KeyBinding.String() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestGetBindingsForCommand(t *testing.T) {
	km := DefaultKeymap()

	// CmdScrollDown should have multiple bindings on the landing page
	// (j and down arrow)
	bindings := km.GetBindingsForCommand(CmdScrollDown, ModeLanding)
	if len(bindings) < 2 {
		t.Errorf("Expected at least 2 bindings for CmdScrollDown, got %d", len(bindings))
	}

	hasJ := false
	hasDown := false
	for _, b := range bindings {
		if b.KeyType == tea.KeyRunes && b.Rune == 'j' {
			hasJ = true
		}
		if b.KeyType == tea.KeyDown {
			hasDown = true
		}
	}
	if !hasJ {
		t.Error("Expected 'j' binding for CmdScrollDown")
	}
	if !hasDown {
		t.Error("Expected down arrow binding for CmdScrollDown")
	}

	// The start-analysis hotkey is bound exactly once; the on-screen
	// controls route through CmdActivate instead of their own keys.
	launch := km.GetBindingsForCommand(CmdStartAnalysis, ModeLanding)
	if len(launch) != 1 {
		t.Errorf("Expected exactly 1 binding for CmdStartAnalysis, got %d", len(launch))
	}
	if len(launch) == 1 && launch[0].Rune != 's' {
		t.Errorf("Expected 's' binding for CmdStartAnalysis, got %q", launch[0].Rune)
	}
}

func TestDefaultKeymapCompleteness(t *testing.T) {
	km := DefaultKeymap()

	expectedModes := []Mode{
		ModeLanding,
		ModeProjects,
	}

	for _, mode := range expectedModes {
		if _, ok := km.Modes[mode]; !ok {
			t.Errorf("Default keymap missing mode: %s", mode)
		}
	}

	landingBindings := km.GetModeBindings(ModeLanding)
	if len(landingBindings) < 20 {
		t.Errorf("Landing mode seems incomplete, only %d bindings", len(landingBindings))
	}

	// All nine digit keys jump to sections
	digits := 0
	for _, b := range landingBindings {
		if b.Command == CmdJumpToSection {
			digits++
		}
	}
	if digits != 9 {
		t.Errorf("Expected 9 digit bindings for CmdJumpToSection, got %d", digits)
	}
}
