// Package msg provides command factory functions that create tea.Cmd values.
//
// These functions are pure factories that create commands returning message
// types defined in this package.

package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickInterval is the frame interval used when no frame rate is
// configured.
const DefaultTickInterval = 100 * time.Millisecond

// Tick returns a command that sends a TickMsg after the default interval.
// This drives the decoration field, spinners, and spring scrolling.
func Tick() tea.Cmd {
	return TickEvery(DefaultTickInterval)
}

// TickEvery returns a command that sends a TickMsg after the given
// interval. The root model re-arms it every frame with the configured
// frame rate.
func TickEvery(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Navigate returns a command that requests a route change. Every trigger of
// the same destination shares this factory; nothing else constructs
// NavigateMsg values.
func Navigate(route string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}
