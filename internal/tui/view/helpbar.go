package view

import (
	"strings"

	"github.com/risksurface/risksurface/internal/tui/keymap"
	"github.com/risksurface/risksurface/internal/tui/styles"
)

// helpEntry pairs a command with the label shown next to its key.
type helpEntry struct {
	cmd   keymap.Command
	label string
}

// RenderTourHelp renders the one-line help bar for the landing page. Keys
// are looked up from the keymap so the bar always reflects the bindings.
func RenderTourHelp(km *keymap.Keymap) string {
	return renderHelp(km, keymap.ModeLanding, []helpEntry{
		{keymap.CmdFocusNext, "focus"},
		{keymap.CmdActivate, "activate"},
		{keymap.CmdStartAnalysis, "start analysis"},
		{keymap.CmdNavNext, "nav"},
		{keymap.CmdScrollDown, "scroll"},
		{keymap.CmdQuit, "quit"},
	})
}

// RenderProjectsHelp renders the one-line help bar for the projects page.
func RenderProjectsHelp(km *keymap.Keymap) string {
	return renderHelp(km, keymap.ModeProjects, []helpEntry{
		{keymap.CmdBack, "back to tour"},
		{keymap.CmdQuit, "quit"},
	})
}

func renderHelp(km *keymap.Keymap, mode keymap.Mode, entries []helpEntry) string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		bindings := km.GetBindingsForCommand(e.cmd, mode)
		if len(bindings) == 0 {
			continue
		}
		keys = append(keys, styles.HelpKey.Render("["+bindings[0].String()+"]")+" "+e.label)
	}
	return styles.HelpBar.Render(strings.Join(keys, "  "))
}
