// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings resolve to named commands so that several keys (or several
// on-screen controls) can share one action without duplicating its logic.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current page of the TUI.
// Different pages have different key bindings active.
type Mode string

const (
	ModeLanding  Mode = "landing"  // The marketing tour page
	ModeProjects Mode = "projects" // The projects dashboard page
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Landing page commands
const (
	// Navbar
	CmdNavPrev       Command = "nav_prev"        // Move navbar highlight left
	CmdNavNext       Command = "nav_next"        // Move navbar highlight right
	CmdJumpToSection Command = "jump_to_section" // 1-9 keys
	CmdActivate      Command = "activate"        // Activate the focused control

	// Focus traversal
	CmdFocusNext Command = "focus_next"
	CmdFocusPrev Command = "focus_prev"

	// The single "start analysis" action. The hero control, the
	// call-to-action control, the footer launch control, and the global
	// hotkey all resolve to this command.
	CmdStartAnalysis Command = "start_analysis"

	// Scrolling
	CmdScrollDown       Command = "scroll_down"
	CmdScrollUp         Command = "scroll_up"
	CmdScrollHalfPageDn Command = "scroll_half_page_down"
	CmdScrollHalfPageUp Command = "scroll_half_page_up"
	CmdScrollPageDown   Command = "scroll_page_down"
	CmdScrollPageUp     Command = "scroll_page_up"
	CmdScrollToTop      Command = "scroll_to_top"
	CmdScrollToBottom   Command = "scroll_to_bottom"

	// Exit
	CmdQuit Command = "quit"
)

// Projects page commands
const (
	CmdBack Command = "back" // Return to the tour
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var s string
	if m&ModCtrl != 0 {
		s += "ctrl+"
	}
	if m&ModAlt != 0 {
		s += "alt+"
	}
	if m&ModShift != 0 {
		s += "shift+"
	}
	return s
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the primary key for this binding.
	// For special keys, use tea.KeyType constants (e.g., tea.KeyEnter).
	// For rune keys, use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for the help bar.
	Description string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	// For special keys (not runes), match the key type directly
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	// For rune keys, check the rune value
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}

	// If Rune is 0, this is a catch-all binding for any rune
	if kb.Rune == 0 {
		return true
	}

	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
// Useful for displaying "Press X or Y to do Z" in the help bar.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}
