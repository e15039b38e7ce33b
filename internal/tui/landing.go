package tui

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/risksurface/risksurface/internal/config"
	"github.com/risksurface/risksurface/internal/content"
	"github.com/risksurface/risksurface/internal/decor"
	"github.com/risksurface/risksurface/internal/logging"
	"github.com/risksurface/risksurface/internal/tui/keymap"
	"github.com/risksurface/risksurface/internal/tui/msg"
	"github.com/risksurface/risksurface/internal/tui/styles"
	"github.com/risksurface/risksurface/internal/tui/view"
	"github.com/risksurface/risksurface/internal/util"
)

// Focus stops on the landing page, in traversal order.
const (
	focusNavbar = iota
	focusHeroLaunch
	focusCTALaunch
	focusFooterLaunch
	focusCount
)

// chromeLines is the fixed vertical overhead around the scroll viewport:
// the navbar, its separator line, and the two help bar lines.
const chromeLines = 4

// sectionAnchor maps a section identifier to the line its block starts on
// within the composed content column. Identifiers are matched against
// lower-cased navbar labels, so a label without a section is a no-op.
type sectionAnchor struct {
	id     string
	offset int
}

// landingModel drives the marketing tour: a centered column of content
// sections scrolled by a damped spring, over an ambient particle field
// rendered in the side gutters. Every mount seeds a fresh decoration
// field, so particle placement is stable for the lifetime of the view and
// reshuffles on remount.
type landingModel struct {
	page   content.Page
	cfg    *config.Config
	logger *logging.Logger
	keymap *keymap.Keymap

	field *decor.Field
	now   time.Time

	pulse spinner.Model

	width  int
	height int

	navIndex   int
	focusIndex int

	scroll       *scrollState
	anchors      []sectionAnchor
	contentLines []string
}

func newLandingModel(page content.Page, cfg *config.Config, logger *logging.Logger, km *keymap.Keymap) *landingModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.Spinner

	return &landingModel{
		page:   page,
		cfg:    cfg,
		logger: logger.WithComponent("landing").WithRevision(string(page.Revision)),
		keymap: km,
		field:  decor.NewField(),
		now:    time.Now(),
		pulse:  sp,
		scroll: newScrollState(cfg.TUI.FrameRate(), cfg.TUI.ReduceMotion),
	}
}

// init returns the commands the page needs on mount. The cognitive pulse
// spinner only runs when the panel exists and motion is allowed.
func (l *landingModel) init() tea.Cmd {
	if l.cfg.TUI.ReduceMotion || !l.page.HasCognitive() {
		return nil
	}
	return l.pulse.Tick
}

func (l *landingModel) setSize(width, height int) {
	l.width = width
	l.height = height
	l.rebuildLayout()
}

// tick advances the frame clock and the scroll spring.
func (l *landingModel) tick(t time.Time) tea.Cmd {
	l.now = t
	l.scroll.step()
	return nil
}

func (l *landingModel) updateSpinner(m spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	l.pulse, cmd = l.pulse.Update(m)
	return cmd
}

// executeCommand runs a resolved key binding. Commands that change routes
// return the navigation command; everything else mutates page state.
func (l *landingModel) executeCommand(cmd keymap.Command, key tea.KeyMsg) tea.Cmd {
	switch cmd {
	case keymap.CmdNavPrev:
		if n := len(l.page.Nav); n > 0 {
			l.navIndex = (l.navIndex + n - 1) % n
		}

	case keymap.CmdNavNext:
		if n := len(l.page.Nav); n > 0 {
			l.navIndex = (l.navIndex + 1) % n
		}

	case keymap.CmdJumpToSection:
		if len(key.Runes) != 1 {
			return nil
		}
		n := int(key.Runes[0] - '1')
		if n < 0 || n >= len(l.page.Nav) {
			return nil
		}
		l.navIndex = n
		l.scrollToLabel(l.page.Nav[n])

	case keymap.CmdActivate:
		if l.focusIndex == focusNavbar {
			if l.navIndex < len(l.page.Nav) {
				l.scrollToLabel(l.page.Nav[l.navIndex])
			}
			return nil
		}
		// Every focused launch control resolves to the one shared
		// start command. Nothing else navigates.
		return l.executeCommand(keymap.CmdStartAnalysis, key)

	case keymap.CmdStartAnalysis:
		l.logger.Info("analysis launch requested", "route", RouteProjects)
		return msg.Navigate(RouteProjects)

	case keymap.CmdFocusNext:
		l.focusIndex = (l.focusIndex + 1) % focusCount

	case keymap.CmdFocusPrev:
		l.focusIndex = (l.focusIndex + focusCount - 1) % focusCount

	case keymap.CmdScrollDown:
		l.scroll.snapBy(1)
	case keymap.CmdScrollUp:
		l.scroll.snapBy(-1)
	case keymap.CmdScrollHalfPageDn:
		l.scroll.snapBy(float64(l.viewportHeight()) / 2)
	case keymap.CmdScrollHalfPageUp:
		l.scroll.snapBy(-float64(l.viewportHeight()) / 2)
	case keymap.CmdScrollPageDown:
		l.scroll.snapBy(float64(l.viewportHeight()))
	case keymap.CmdScrollPageUp:
		l.scroll.snapBy(-float64(l.viewportHeight()))
	case keymap.CmdScrollToTop:
		l.scroll.snapTo(0)
	case keymap.CmdScrollToBottom:
		l.scroll.snapTo(l.scroll.max)
	}
	return nil
}

// scrollToLabel glides the viewport to the section whose identifier is the
// lower-cased label. Labels without a registered section are ignored.
func (l *landingModel) scrollToLabel(label string) {
	offset, ok := l.anchorOffset(strings.ToLower(label))
	if !ok {
		l.logger.Debug("no section for nav label", "label", label)
		return
	}
	l.scroll.glideTo(float64(offset))
}

func (l *landingModel) anchorOffset(id string) (int, bool) {
	for _, a := range l.anchors {
		if a.id == id {
			return a.offset, true
		}
	}
	return 0, false
}

// contentWidth is the configured column width, shrunk to fit narrow
// terminals.
func (l *landingModel) contentWidth() int {
	w := l.cfg.TUI.ContentWidth
	if l.width > 0 {
		w = min(w, max(l.width-2, 20))
	}
	return w
}

func (l *landingModel) viewportHeight() int {
	return max(l.height-chromeLines, 1)
}

// rebuildLayout composes the content column at the current width and
// rebuilds the section registry from the rendered block heights.
func (l *landingModel) rebuildLayout() {
	w := l.contentWidth()

	var pulse string
	if l.page.HasCognitive() && !l.cfg.TUI.ReduceMotion {
		pulse = l.pulse.View()
	}

	blocks := make([]string, 0, 6)
	anchors := make([]sectionAnchor, 0, 5)
	line := 0
	add := func(id, block string) {
		if block == "" {
			return
		}
		if id != "" {
			anchors = append(anchors, sectionAnchor{id: id, offset: line})
		}
		blocks = append(blocks, block)
		line += strings.Count(block, "\n") + 2
	}

	add("overview", view.RenderHero(view.HeroState{
		Hero:          l.page.Hero,
		LaunchFocused: l.focusIndex == focusHeroLaunch,
		Width:         w,
	}))
	add("methodology", view.RenderMethodology(view.MethodologyState{
		Features: l.page.Features,
		Width:    w,
	}))
	if l.page.HasCognitive() {
		add("analyst", view.RenderCognitive(view.CognitiveState{
			Panel: l.page.Cognitive,
			Pulse: pulse,
			Width: w,
		}))
	}
	add("proof", view.RenderProofGrid(view.ProofGridState{
		Proofs: l.page.Proofs,
		Width:  w,
	}))
	add("access", view.RenderCTA(view.CTAState{
		CTA:           l.page.CTA,
		LaunchFocused: l.focusIndex == focusCTALaunch,
		Width:         w,
	}))
	add("", view.RenderFooter(view.FooterState{
		Footer:        l.page.Footer,
		LaunchFocused: l.focusIndex == focusFooterLaunch,
		Width:         w,
	}))

	l.contentLines = strings.Split(strings.Join(blocks, "\n\n"), "\n")
	l.anchors = anchors
	l.scroll.setMax(float64(max(len(l.contentLines)-l.viewportHeight(), 0)))
}

func (l *landingModel) View() string {
	if l.width <= 0 || l.height <= 0 {
		return ""
	}
	l.rebuildLayout()

	navbar := view.RenderNavbar(view.NavbarState{
		Brand:  l.page.Brand.Name,
		Items:  l.page.Nav,
		Active: l.navIndex,
		Width:  l.width,
	})

	return navbar + "\n\n" + l.renderViewport() + "\n" + view.RenderTourHelp(l.keymap)
}

// renderViewport slices the content column at the scroll offset and lays
// the particle field into the gutters on either side. Cells covered by the
// content column occlude particles; the field itself is fixed relative to
// the viewport and does not scroll with the content.
func (l *landingModel) renderViewport() string {
	viewH := l.viewportHeight()
	contentW := l.contentWidth()
	gutterL := max((l.width-contentW)/2, 0)
	gutterR := max(l.width-contentW-gutterL, 0)

	var particles []decor.Particle
	if l.cfg.TUI.ReduceMotion {
		particles = l.field.Static(l.width, viewH)
	} else {
		particles = l.field.Frame(l.width, viewH, l.field.Age(l.now))
	}
	byRow := make(map[int][]decor.Particle, len(particles))
	for _, p := range particles {
		byRow[p.Row] = append(byRow[p.Row], p)
	}

	offset := min(l.scroll.offset(), max(len(l.contentLines)-viewH, 0))

	rows := make([]string, viewH)
	for row := 0; row < viewH; row++ {
		var line string
		if i := offset + row; i >= 0 && i < len(l.contentLines) {
			line = l.contentLines[i]
		}
		if pad := contentW - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		assembled := renderGutter(byRow[row], 0, gutterL) + line + renderGutter(byRow[row], gutterL+contentW, gutterR)
		if lipgloss.Width(assembled) > l.width {
			assembled = util.TruncateANSI(assembled, l.width)
		}
		rows[row] = assembled
	}
	return strings.Join(rows, "\n")
}

// renderGutter renders the particles that fall inside a horizontal band
// [start, start+width). Overlapping particles keep the leftmost one.
func renderGutter(particles []decor.Particle, start, width int) string {
	if width <= 0 {
		return ""
	}
	slices.SortFunc(particles, func(a, b decor.Particle) int { return a.Col - b.Col })

	var b strings.Builder
	col := start
	for _, p := range particles {
		if p.Col < col || p.Col >= start+width {
			continue
		}
		b.WriteString(strings.Repeat(" ", p.Col-col))
		b.WriteString(styles.ParticleStyle(p.Depth).Render(string(p.Glyph)))
		col = p.Col + 1
	}
	b.WriteString(strings.Repeat(" ", start+width-col))
	return b.String()
}
