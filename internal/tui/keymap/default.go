package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default keymap configuration.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default RiskSurface tour key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeLanding:  defaultLandingBindings(),
			ModeProjects: defaultProjectsBindings(),
		},
	}
}

func defaultLandingBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeLanding,
		Bindings: []KeyBinding{
			// Navbar
			{KeyType: tea.KeyLeft, Command: CmdNavPrev, Description: "Previous nav item"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdNavPrev, Description: "Previous nav item"},
			{KeyType: tea.KeyRight, Command: CmdNavNext, Description: "Next nav item"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdNavNext, Description: "Next nav item"},
			{KeyType: tea.KeyRunes, Rune: '1', Command: CmdJumpToSection, Description: "Jump to section 1"},
			{KeyType: tea.KeyRunes, Rune: '2', Command: CmdJumpToSection, Description: "Jump to section 2"},
			{KeyType: tea.KeyRunes, Rune: '3', Command: CmdJumpToSection, Description: "Jump to section 3"},
			{KeyType: tea.KeyRunes, Rune: '4', Command: CmdJumpToSection, Description: "Jump to section 4"},
			{KeyType: tea.KeyRunes, Rune: '5', Command: CmdJumpToSection, Description: "Jump to section 5"},
			{KeyType: tea.KeyRunes, Rune: '6', Command: CmdJumpToSection, Description: "Jump to section 6"},
			{KeyType: tea.KeyRunes, Rune: '7', Command: CmdJumpToSection, Description: "Jump to section 7"},
			{KeyType: tea.KeyRunes, Rune: '8', Command: CmdJumpToSection, Description: "Jump to section 8"},
			{KeyType: tea.KeyRunes, Rune: '9', Command: CmdJumpToSection, Description: "Jump to section 9"},
			{KeyType: tea.KeyEnter, Command: CmdActivate, Description: "Activate focused control"},

			// Focus traversal
			{KeyType: tea.KeyTab, Command: CmdFocusNext, Description: "Next control"},
			{KeyType: tea.KeyShiftTab, Command: CmdFocusPrev, Description: "Previous control"},

			// Launch
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdStartAnalysis, Description: "Start analysis"},

			// Scrolling
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdScrollDown, Description: "Scroll down"},
			{KeyType: tea.KeyDown, Command: CmdScrollDown, Description: "Scroll down"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdScrollUp, Description: "Scroll up"},
			{KeyType: tea.KeyUp, Command: CmdScrollUp, Description: "Scroll up"},
			{KeyType: tea.KeyCtrlD, Command: CmdScrollHalfPageDn, Description: "Scroll half page down"},
			{KeyType: tea.KeyCtrlU, Command: CmdScrollHalfPageUp, Description: "Scroll half page up"},
			{KeyType: tea.KeyCtrlF, Command: CmdScrollPageDown, Description: "Scroll page down"},
			{KeyType: tea.KeyPgDown, Command: CmdScrollPageDown, Description: "Scroll page down"},
			{KeyType: tea.KeyCtrlB, Command: CmdScrollPageUp, Description: "Scroll page up"},
			{KeyType: tea.KeyPgUp, Command: CmdScrollPageUp, Description: "Scroll page up"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdScrollToTop, Description: "Go to top"},
			{KeyType: tea.KeyHome, Command: CmdScrollToTop, Description: "Go to top"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdScrollToBottom, Description: "Go to bottom"},
			{KeyType: tea.KeyEnd, Command: CmdScrollToBottom, Description: "Go to bottom"},

			// Exit
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit"},
		},
	}
}

func defaultProjectsBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeProjects,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdBack, Description: "Back to tour"},
			{KeyType: tea.KeyRunes, Rune: 'b', Command: CmdBack, Description: "Back to tour"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit"},
		},
	}
}
