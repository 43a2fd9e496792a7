// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hy4ri/swipepager/internal/pager"
	"gopkg.in/yaml.v3"
)

const appName = "swipepager"

// Config represents the application configuration.
type Config struct {
	Pager     PagerConfig     `yaml:"pager"`
	Indicator IndicatorConfig `yaml:"indicator"`
	Animation AnimationConfig `yaml:"animation"`
	UI        UIConfig        `yaml:"ui"`
	Log       LogConfig       `yaml:"log"`
}

// PagerConfig holds the page geometry, in terminal cells.
type PagerConfig struct {
	PageWidth        int     `yaml:"page_width"`
	PageHeight       int     `yaml:"page_height"`
	InterPagePadding int     `yaml:"inter_page_padding"`
	MaxPage          int     `yaml:"max_page"`
	FocusedScale     float64 `yaml:"focused_scale"`
	UnfocusedScale   float64 `yaml:"unfocused_scale"`
}

// IndicatorConfig holds the page indicator settings.
type IndicatorConfig struct {
	Type            string  `yaml:"type"` // "none", "dot" or "square"
	ActiveOpacity   float64 `yaml:"active_opacity"`
	InactiveOpacity float64 `yaml:"inactive_opacity"`
	ForegroundColor string  `yaml:"foreground_color"`
	Size            int     `yaml:"size"`
}

// AnimationConfig describes the release animation.
type AnimationConfig struct {
	Curve     string  `yaml:"curve"` // "spring" or "none"
	Frequency float64 `yaml:"frequency,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
	FPS       int     `yaml:"fps,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	EdgeBell   bool `yaml:"edge_bell"`
	ShowStatus bool `yaml:"show_status"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`          // debug, info, warn or error
	File  string `yaml:"file,omitempty"` // defaults to <config dir>/swipepager.log
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	style := pager.DefaultStyle()
	ind := pager.DefaultIndicatorStyle()
	return &Config{
		Pager: PagerConfig{
			PageWidth:        int(style.PageWidth),
			PageHeight:       int(style.PageHeight),
			InterPagePadding: int(style.InterPagePadding),
			MaxPage:          style.MaxPage,
			FocusedScale:     style.FocusedScale,
			UnfocusedScale:   style.UnfocusedScale,
		},
		Indicator: IndicatorConfig{
			Type:            string(ind.Type),
			ActiveOpacity:   ind.ActiveOpacity,
			InactiveOpacity: ind.InactiveOpacity,
			ForegroundColor: ind.ForegroundColor,
			Size:            ind.Size,
		},
		Animation: AnimationConfig{
			Curve:     string(style.Animation.Curve),
			Frequency: style.Animation.Frequency,
			Damping:   style.Animation.Damping,
			FPS:       style.Animation.FPS,
		},
		UI: UIConfig{
			ShowStatus: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path.
// If the file doesn't exist, returns a default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to path.
func SaveTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate returns every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.PagerStyle().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.IndicatorStyle().Validate(); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level: %s (must be error, warn, info, or debug)", c.Log.Level))
	}
	return errors.Join(errs...)
}

// PagerStyle converts the configured geometry and animation into a pager style.
func (c *Config) PagerStyle() pager.Style {
	return pager.Style{
		InterPagePadding: float64(c.Pager.InterPagePadding),
		PageWidth:        float64(c.Pager.PageWidth),
		PageHeight:       float64(c.Pager.PageHeight),
		MaxPage:          c.Pager.MaxPage,
		FocusedScale:     c.Pager.FocusedScale,
		UnfocusedScale:   c.Pager.UnfocusedScale,
		Animation: pager.Animation{
			Curve:     pager.Curve(c.Animation.Curve),
			Frequency: c.Animation.Frequency,
			Damping:   c.Animation.Damping,
			FPS:       c.Animation.FPS,
		},
	}
}

// IndicatorStyle converts the configured indicator into a pager indicator style.
func (c *Config) IndicatorStyle() pager.IndicatorStyle {
	return pager.IndicatorStyle{
		Type:            pager.IndicatorType(c.Indicator.Type),
		ActiveOpacity:   c.Indicator.ActiveOpacity,
		InactiveOpacity: c.Indicator.InactiveOpacity,
		ForegroundColor: c.Indicator.ForegroundColor,
		Size:            c.Indicator.Size,
	}
}

// LogPath returns the configured log file, or the default one in the
// config directory.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}
