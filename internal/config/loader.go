package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix starts the name of every environment variable ApplyEnv reads.
const EnvPrefix = "ROPETEXT_"

// Format selects a settings file decoder.
type Format uint8

// Settings file formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads the settings file at path over the defaults. A missing file
// yields the defaults and no error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	format, err := FormatOf(path)
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := cfg.decode(path, format, data); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Parse decodes data over the defaults. source names the data in errors.
func Parse(source string, format Format, data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.decode(source, format, data); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) decode(source string, format Format, data []byte) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			perr := &ParseError{Path: source, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return perr
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	return nil
}

// ApplyEnv overrides settings from ROPETEXT_* variables found by lookup,
// which is usually os.LookupEnv. Every unparsable value is reported.
//
//	ROPETEXT_TAB_WIDTH       int
//	ROPETEXT_HARD_TABS       bool
//	ROPETEXT_HISTORY_LIMIT   int
//	ROPETEXT_SCROLL_MARGIN   int
//	ROPETEXT_LINE_NUMBERS    bool
//	ROPETEXT_LOG_LEVEL       string
//	ROPETEXT_LOG_FILE        string
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs error
	ints := map[string]*int{
		"TAB_WIDTH":     &c.TabWidth,
		"HISTORY_LIMIT": &c.HistoryLimit,
		"SCROLL_MARGIN": &c.ScrollMargin,
	}
	for name, dst := range ints {
		if val, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				continue
			}
			*dst = n
		}
	}

	bools := map[string]*bool{
		"HARD_TABS":    &c.HardTabs,
		"LINE_NUMBERS": &c.LineNumbers,
	}
	for name, dst := range bools {
		if val, ok := lookup(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(val))
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				continue
			}
			*dst = b
		}
	}

	if val, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = strings.ToLower(strings.TrimSpace(val))
	}
	if val, ok := lookup(EnvPrefix + "LOG_FILE"); ok {
		c.LogFile = val
	}
	return errs
}
