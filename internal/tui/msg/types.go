package msg

import (
	"time"

	"github.com/risksurface/risksurface/internal/tui/styles"
)

// TickMsg is sent periodically to drive animation frames.
type TickMsg time.Time

// NavigateMsg requests a route change. The root model owns the route and
// swaps the active page model when it receives one of these.
type NavigateMsg struct {
	Route string
}

// ThemeReloadedMsg carries a re-parsed custom theme file after the watcher
// sees a write. The theme registry is only mutated from the event loop, so
// the watcher sends the parsed file here instead of registering it itself.
type ThemeReloadedMsg struct {
	Name  styles.ThemeName
	Theme *styles.ThemeFile
}

// ThemeWatchErrorMsg reports a failed theme reload (unreadable or invalid
// file). The tour keeps its current palette and logs the error at debug.
type ThemeWatchErrorMsg struct {
	Err error
}
