// Package tui provides the terminal user interface for the swipe pager.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/swipepager/internal/config"
	"github.com/hy4ri/swipepager/internal/content"
	"github.com/hy4ri/swipepager/internal/logging"
	"github.com/hy4ri/swipepager/internal/tui/components"
)

// statusKind picks the status line style.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

// bellMsg reports the outcome of ringing the edge bell.
type bellMsg struct {
	err error
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config *config.Config
	logger *slog.Logger
	bell   func() error

	// Components
	pager     *components.PagerModel
	pagerOpts []components.PagerOption
	helpComp  *components.HelpModel
	help      help.Model
	keys      KeyMap

	// UI state
	width      int
	height     int
	showHelp   bool
	statusMsg  string
	statusKind statusKind
}

// Option customizes an App.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithBell replaces the edge bell.
func WithBell(fn func() error) Option {
	return func(a *App) {
		a.bell = fn
	}
}

// WithPagerOptions passes options through to the pager component.
func WithPagerOptions(opts ...components.PagerOption) Option {
	return func(a *App) {
		a.pagerOpts = append(a.pagerOpts, opts...)
	}
}

// NewApp creates a new App instance showing pages.
func NewApp(pages []content.Page, cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := &App{
		config: cfg,
		logger: logging.Discard(),
		bell: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
		help: help.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	pagerOpts := append([]components.PagerOption{
		components.WithLogger(a.logger),
	}, a.pagerOpts...)
	a.pager = components.NewPager(pages, cfg.PagerStyle(), cfg.IndicatorStyle(), pagerOpts...)

	a.keys = DefaultKeyMap(a.pager.Keys())
	a.helpComp = components.NewHelp()
	a.helpComp.SetBindings(a.keys.FullHelp(), "Pages", "General")
	a.logger = logging.WithComponent(a.logger, "app")

	if len(pages) > 0 {
		a.setStatus(a.pageStatus(), statusInfo)
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.pager.Init()
}

// Pager returns the pager component.
func (a *App) Pager() *components.PagerModel {
	return a.pager
}

func (a *App) setStatus(msg string, kind statusKind) {
	a.statusMsg = msg
	a.statusKind = kind
}
