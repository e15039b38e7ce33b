package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/risksurface/risksurface/internal/config"
	"github.com/risksurface/risksurface/internal/content"
	"github.com/risksurface/risksurface/internal/logging"
	"github.com/risksurface/risksurface/internal/tui/keymap"
	"github.com/risksurface/risksurface/internal/tui/msg"
	"github.com/risksurface/risksurface/internal/tui/styles"
)

// Routes the tour can display.
const (
	RouteLanding  = "/"
	RouteProjects = "/projects"
)

// Model is the root bubbletea model. It owns the current route and swaps
// page models on navigation; everything below it is per-page state.
type Model struct {
	cfg    *config.Config
	logger *logging.Logger
	keymap *keymap.Keymap
	page   content.Page

	route    string
	landing  *landingModel
	projects *projectsModel

	width  int
	height int
	ready  bool
}

// NewModel builds the root model for the configured revision. The landing
// page is mounted immediately; /projects mounts on demand.
func NewModel(cfg *config.Config, logger *logging.Logger) *Model {
	page := content.ForRevision(content.Revision(cfg.Tour.Revision))
	km := keymap.DefaultKeymap()
	return &Model{
		cfg:     cfg,
		logger:  logger.WithComponent("tui"),
		keymap:  km,
		page:    page,
		route:   RouteLanding,
		landing: newLandingModel(page, cfg, logger, km),
	}
}

// Route returns the current route.
func (m *Model) Route() string {
	return m.route
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(msg.TickEvery(m.cfg.TUI.FrameRate()), m.landing.init())
}

func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.ready = true
		m.landing.setSize(v.Width, v.Height)
		if m.projects != nil {
			m.projects.setSize(v.Width, v.Height)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(v)

	case msg.TickMsg:
		cmd := m.tickActive(time.Time(v))
		return m, tea.Batch(msg.TickEvery(m.cfg.TUI.FrameRate()), cmd)

	case msg.NavigateMsg:
		return m.navigate(v.Route)

	case msg.ThemeReloadedMsg:
		// Registered here so the theme registry is only touched from
		// the event loop.
		styles.RegisterCustomTheme(v.Name, v.Theme)
		styles.SetActiveTheme(v.Name)
		m.logger.Info("theme reloaded", "theme", string(v.Name))
		return m, nil

	case msg.ThemeWatchErrorMsg:
		m.logger.Debug("theme reload failed", "error", v.Err)
		return m, nil

	case spinner.TickMsg:
		if m.route == RouteProjects && m.projects != nil {
			return m, m.projects.updateSpinner(v)
		}
		return m, m.landing.updateSpinner(v)
	}

	return m, nil
}

func (m *Model) handleKeypress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := keymap.ModeLanding
	if m.route == RouteProjects {
		mode = keymap.ModeProjects
	}

	cmd, found := m.keymap.GetBinding(key, mode)
	if !found {
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		m.logger.Debug("quit requested")
		return m, tea.Quit
	case keymap.CmdBack:
		return m, msg.Navigate(RouteLanding)
	default:
		if mode != keymap.ModeLanding {
			return m, nil
		}
		return m, m.landing.executeCommand(cmd, key)
	}
}

// navigate swaps the active page. Unknown routes fall back to the landing
// page; re-setting the current route keeps the mounted page as is. Landing
// always remounts fresh, which reseeds its decoration field.
func (m *Model) navigate(route string) (tea.Model, tea.Cmd) {
	if route != RouteProjects {
		route = RouteLanding
	}
	if route == m.route {
		return m, nil
	}

	m.route = route
	m.logger.Info("route changed", "route", route)

	if route == RouteProjects {
		m.projects = newProjectsModel(m.page.Brand.Name, m.cfg, m.logger, m.keymap)
		m.projects.setSize(m.width, m.height)
		return m, m.projects.init()
	}

	m.projects = nil
	m.landing = newLandingModel(m.page, m.cfg, m.logger, m.keymap)
	m.landing.setSize(m.width, m.height)
	return m, m.landing.init()
}

func (m *Model) tickActive(t time.Time) tea.Cmd {
	if m.route == RouteProjects && m.projects != nil {
		return m.projects.tick(t)
	}
	return m.landing.tick(t)
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.route == RouteProjects && m.projects != nil {
		return m.projects.View()
	}
	return m.landing.View()
}
