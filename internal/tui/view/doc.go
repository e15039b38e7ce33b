// Package view provides the stateless section renderers for the tour.
//
// Each section of the page (navbar, hero, methodology grid, cognitive panel,
// proof grid, call-to-action, footer) is rendered by one function taking a
// small state struct and returning a styled string. Sections are independent:
// no renderer reads another's output, and all copy comes from
// [internal/content] data.
//
// The renderers are deliberately free of Bubble Tea state. Anything animated
// (spinner frames) arrives pre-rendered in the state struct; anything
// interactive (focus, navbar highlight) arrives as plain values. This keeps
// every section testable with a direct call.
package view
