package config

import (
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/multierr"
)

// Limits enforced by Validate.
const (
	MaxTabWidth = 16
)

// LogLevels lists the accepted values of Config.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds every editor setting.
type Config struct {
	// TabWidth is the indentation width and the distance between tab stops.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
	// HardTabs makes indentation insert '\t' instead of spaces.
	HardTabs bool `toml:"hard_tabs" yaml:"hard_tabs"`
	// HistoryLimit is the maximum number of undo snapshots per buffer.
	HistoryLimit int `toml:"history_limit" yaml:"history_limit"`
	// ScrollMargin is the number of rows kept visible above and below the
	// cursor when scrolling.
	ScrollMargin int `toml:"scroll_margin" yaml:"scroll_margin"`
	// LineNumbers shows the line-number gutter.
	LineNumbers bool `toml:"line_numbers" yaml:"line_numbers"`
	// LogLevel is one of LogLevels.
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// LogFile receives log output. Empty means DefaultLogFile().
	LogFile string `toml:"log_file" yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabWidth:     4,
		HardTabs:     false,
		HistoryLimit: 1024,
		ScrollMargin: 3,
		LineNumbers:  true,
		LogLevel:     "info",
	}
}

// Validate reports every invalid setting. The result combines one
// *ValidationError per problem; use multierr.Errors to list them.
func (c Config) Validate() error {
	var err error
	if c.TabWidth < 1 || c.TabWidth > MaxTabWidth {
		err = multierr.Append(err, &ValidationError{Key: "tab_width", Message: "must be between 1 and 16", Value: c.TabWidth})
	}
	if c.HistoryLimit < 1 {
		err = multierr.Append(err, &ValidationError{Key: "history_limit", Message: "must be at least 1", Value: c.HistoryLimit})
	}
	if c.ScrollMargin < 0 {
		err = multierr.Append(err, &ValidationError{Key: "scroll_margin", Message: "must not be negative", Value: c.ScrollMargin})
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		err = multierr.Append(err, &ValidationError{Key: "log_level", Message: "must be debug, info, warn, or error", Value: c.LogLevel})
	}
	return err
}

// DefaultPath returns the user settings file.
func DefaultPath() string {
	return filepath.Join(userConfigDir(), "config.toml")
}

// DefaultKeymapPath returns the user key bindings file.
func DefaultKeymapPath() string {
	return filepath.Join(userConfigDir(), "keymap.toml")
}

// DefaultLogFile returns the log file used when LogFile is empty.
func DefaultLogFile() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "ropetext", "ropetext.log")
	}
	return filepath.Join(os.TempDir(), "ropetext.log")
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ropetext")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ropetext")
}
