// Package main is the entry point for the swipepager application.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/swipepager/internal/config"
	"github.com/hy4ri/swipepager/internal/content"
	"github.com/hy4ri/swipepager/internal/logging"
	"github.com/hy4ri/swipepager/internal/pager"
	"github.com/hy4ri/swipepager/internal/tui"
)

const version = "0.1.0"

const helpText = `swipepager - Swipe through pages in the terminal

USAGE:
    swipepager [OPTIONS] [FILE or DIRECTORY...]

    Each file becomes one page. A directory contributes its files in name
    order. Without arguments, demo pages are shown.

OPTIONS:
    -h, --help              Show this help message
    -v, --version           Show version information
    --init                  Create a template config file
    --config <path>         Use an alternate config file
    --demo <n>              Number of demo pages when no files are given (default 7)
    --indicator <type>      Page indicator: none, dot or square

CONFIGURATION:
    Config file: ~/.config/swipepager/config.yaml
    Log file:    ~/.config/swipepager/swipepager.log

CONTROLS:
    Mouse:
        Drag left/right     Swipe to the next/previous page
        Horizontal wheel    Next/previous page

    Keys:
        h/←, l/→            Previous/next page
        g, G                First/last page
        y                   Copy the page to the clipboard
        ?                   Show help
        q                   Quit
`

const configTemplate = `# swipepager configuration
# Location: ~/.config/swipepager/config.yaml

pager:
  # Page size in terminal cells
  page_width: 40
  page_height: 12
  # Gap between neighbouring pages
  inter_page_padding: 4
  # Pages outside the visible window are parked (max_page + 1) page
  # offsets off-screen; it does not limit how many pages can be shown
  max_page: 10
  focused_scale: 1
  unfocused_scale: 0.8

indicator:
  # none, dot or square
  type: dot
  active_opacity: 1
  inactive_opacity: 0.35
  foreground_color: "#FFFFFF"
  size: 1

animation:
  # spring or none
  curve: spring
  frequency: 8
  damping: 0.8
  fps: 60

ui:
  # Ring the terminal bell when swiping past the first or last page
  edge_bell: false
  show_status: true

log:
  # debug, info, warn or error
  level: info
  # file: /tmp/swipepager.log
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		configPath  string
		demoPages   int
		indicator   string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&configPath, "config", "", "Alternate config file")
	flag.IntVar(&demoPages, "demo", 7, "Number of demo pages")
	flag.StringVar(&indicator, "indicator", "", "Page indicator: none, dot or square")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("swipepager version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate(configPath)
	}

	// Normal application flow
	return runApp(configPath, indicator, demoPages, flag.Args())
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(path string) error {
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(path, indicator string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if indicator != "" {
		t, err := pager.ParseIndicatorType(indicator)
		if err != nil {
			return nil, err
		}
		cfg.Indicator.Type = string(t)
	}
	return cfg, nil
}

// runApp starts the main TUI application.
func runApp(configPath, indicator string, demoPages int, args []string) error {
	cfg, err := loadConfig(configPath, indicator)
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("failed to get log path: %w", err)
	}
	logger, closer, err := logging.Setup(logging.Options{
		Level:   cfg.Log.Level,
		File:    logPath,
		Version: version,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	pages := content.Demo(demoPages)
	if len(args) > 0 {
		pages, err = content.Load(args)
		if err != nil {
			return fmt.Errorf("failed to load pages: %w", err)
		}
	}
	logger.Info("starting", slog.Int("pages", len(pages)), slog.String("indicator", cfg.Indicator.Type))

	app := tui.NewApp(pages, cfg, tui.WithLogger(logger))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", slog.Any("err", err))
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
