package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/risksurface/risksurface/internal/config"
	"github.com/risksurface/risksurface/internal/logging"
	"github.com/risksurface/risksurface/internal/tui/msg"
	"github.com/risksurface/risksurface/internal/tui/styles"
)

// App wires the root model into a bubbletea program with alt-screen
// rendering, signal forwarding, and hot reload for file-backed themes.
type App struct {
	cfg     *config.Config
	logger  *logging.Logger
	model   *Model
	program *tea.Program
	watcher *styles.Watcher
}

// NewApp builds the tour application. The configured theme is applied
// before the program starts so the first frame already renders with it.
func NewApp(cfg *config.Config, logger *logging.Logger) *App {
	styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))
	return &App{
		cfg:    cfg,
		logger: logger.WithComponent("app"),
		model:  NewModel(cfg, logger),
	}
}

// Model returns the root model. Exposed for tests.
func (a *App) Model() *Model {
	return a.model
}

// Run starts the program and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a.model, tea.WithAltScreen())
	a.program = p

	a.startThemeWatch(p)
	if a.watcher != nil {
		defer a.watcher.Stop()
	}

	// Forward termination signals into the event loop so bubbletea
	// restores the terminal before the process exits.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	a.logger.Info("tour started",
		"revision", a.cfg.Tour.Revision,
		"theme", a.cfg.TUI.Theme,
		"reduce_motion", a.cfg.TUI.ReduceMotion)

	_, err := p.Run()
	return err
}

// startThemeWatch begins watching the active theme's file. Builtin themes
// have no file, so there is nothing to watch; reload and parse results are
// forwarded into the event loop as messages.
func (a *App) startThemeWatch(p *tea.Program) {
	name := a.cfg.TUI.Theme
	if !styles.IsCustomTheme(name) {
		return
	}

	w, err := styles.NewWatcher(styles.ThemeName(name))
	if err != nil {
		a.logger.Warn("theme file watch unavailable", "theme", name, "error", err)
		return
	}

	w.SetReloadCallback(func(theme styles.ThemeName, file *styles.ThemeFile) {
		p.Send(msg.ThemeReloadedMsg{Name: theme, Theme: file})
	})
	w.SetErrorCallback(func(err error) {
		p.Send(msg.ThemeWatchErrorMsg{Err: err})
	})
	w.Start()
	a.watcher = w
	a.logger.Info("watching theme file", "theme", name, "path", w.Path())
}
