package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/risksurface/risksurface/internal/config"
	"github.com/risksurface/risksurface/internal/logging"
	"github.com/risksurface/risksurface/internal/tui/keymap"
	"github.com/risksurface/risksurface/internal/tui/styles"
	"github.com/risksurface/risksurface/internal/tui/view"
)

// projectsModel is the placeholder destination for the start-analysis
// flow. No analyzer is attached, so it renders an empty state and waits
// for back navigation.
type projectsModel struct {
	brand  string
	cfg    *config.Config
	logger *logging.Logger
	keymap *keymap.Keymap

	spin spinner.Model

	width  int
	height int
}

func newProjectsModel(brand string, cfg *config.Config, logger *logging.Logger, km *keymap.Keymap) *projectsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return &projectsModel{
		brand:  brand,
		cfg:    cfg,
		logger: logger.WithComponent("projects"),
		keymap: km,
		spin:   sp,
	}
}

func (p *projectsModel) init() tea.Cmd {
	if p.cfg.TUI.ReduceMotion {
		return nil
	}
	return p.spin.Tick
}

func (p *projectsModel) setSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *projectsModel) tick(t time.Time) tea.Cmd {
	return nil
}

func (p *projectsModel) updateSpinner(m spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	p.spin, cmd = p.spin.Update(m)
	return cmd
}

func (p *projectsModel) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}

	var frame string
	if !p.cfg.TUI.ReduceMotion {
		frame = p.spin.View()
	}
	body := view.RenderProjects(view.ProjectsState{
		Brand:   p.brand,
		Spinner: frame,
		Width:   p.width,
	})
	help := view.RenderProjectsHelp(p.keymap)

	content := lipgloss.Place(p.width, max(p.height-2, 1), lipgloss.Center, lipgloss.Center, body)
	return content + "\n" + help
}
