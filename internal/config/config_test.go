package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Config{
		TabWidth:     0,
		HistoryLimit: 0,
		ScrollMargin: -1,
		LogLevel:     "loud",
	}
	err := cfg.Validate()
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}

	var keys []string
	for _, e := range multierr.Errors(err) {
		var verr *ValidationError
		if !errors.As(e, &verr) {
			t.Fatalf("unexpected error type %T", e)
		}
		keys = append(keys, verr.Key)
	}
	want := []string{"tab_width", "history_limit", "scroll_margin", "log_level"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("problems mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"config.toml", FormatTOML, false},
		{"CONFIG.TOML", FormatTOML, false},
		{"config.yaml", FormatYAML, false},
		{"config.yml", FormatYAML, false},
		{"config.json", 0, true},
		{"config", 0, true},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatOf(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatOf(%q) error should wrap ErrUnsupportedFormat", tt.path)
		}
		if got != tt.want {
			t.Errorf("FormatOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		want   func(*Config)
	}{
		{
			name:   "toml",
			format: FormatTOML,
			data:   "tab_width = 8\nhard_tabs = true\nlog_level = \"debug\"\n",
			want: func(c *Config) {
				c.TabWidth = 8
				c.HardTabs = true
				c.LogLevel = "debug"
			},
		},
		{
			name:   "yaml",
			format: FormatYAML,
			data:   "scroll_margin: 5\nline_numbers: false\nlog_file: /tmp/x.log\n",
			want: func(c *Config) {
				c.ScrollMargin = 5
				c.LineNumbers = false
				c.LogFile = "/tmp/x.log"
			},
		},
		{
			name:   "empty toml",
			format: FormatTOML,
			data:   "",
			want:   func(*Config) {},
		},
		{
			name:   "empty yaml",
			format: FormatYAML,
			data:   "",
			want:   func(*Config) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name, tt.format, []byte(tt.data))
			if err != nil {
				t.Fatal(err)
			}
			want := Default()
			tt.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		data     string
		wantLine bool
	}{
		{"toml syntax", FormatTOML, "tab_width = = 4\n", true},
		{"toml unknown key", FormatTOML, "tabwidth = 4\n", false},
		{"toml wrong type", FormatTOML, "tab_width = \"wide\"\n", false},
		{"yaml unknown key", FormatYAML, "tabwidth: 4\n", false},
		{"yaml syntax", FormatYAML, "tab_width: [\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse("settings", tt.format, []byte(tt.data))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if perr.Path != "settings" {
				t.Errorf("Path = %q, want %q", perr.Path, "settings")
			}
			if tt.wantLine && perr.Line != 1 {
				t.Errorf("Line = %d, want 1", perr.Line)
			}
			if got != Default() {
				t.Error("a failed parse should return the defaults")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		cfg, err := Load(filepath.Join(dir, "absent.toml"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg != Default() {
			t.Error("missing file should load the defaults")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil || cfg != Default() {
			t.Errorf("Load(\"\") = %+v, %v", cfg, err)
		}
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(dir, "config.yml")
		if err := os.WriteFile(path, []byte("history_limit: 50\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.HistoryLimit != 50 || cfg.TabWidth != Default().TabWidth {
			t.Errorf("unexpected config %+v", cfg)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "config.ini"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"ROPETEXT_TAB_WIDTH":    "2",
		"ROPETEXT_HARD_TABS":    "true",
		"ROPETEXT_LINE_NUMBERS": "0",
		"ROPETEXT_LOG_LEVEL":    " WARN ",
		"ROPETEXT_LOG_FILE":     "/var/log/rt.log",
		"OTHER_TAB_WIDTH":       "9",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.TabWidth = 2
	want.HardTabs = true
	want.LineNumbers = false
	want.LogLevel = "warn"
	want.LogFile = "/var/log/rt.log"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	env := map[string]string{
		"ROPETEXT_TAB_WIDTH": "four",
		"ROPETEXT_HARD_TABS": "maybe",
	}
	cfg := Default()
	err := cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	if n := len(multierr.Errors(err)); n != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", n, err)
	}
	if !strings.Contains(err.Error(), "ROPETEXT_TAB_WIDTH") {
		t.Errorf("error should name the variable: %v", err)
	}
	if cfg.TabWidth != Default().TabWidth || cfg.HardTabs {
		t.Error("unparsable values should be left alone")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != filepath.Join("/xdg", "ropetext", "config.toml") {
		t.Errorf("DefaultPath() = %q", got)
	}
	if got := DefaultKeymapPath(); got != filepath.Join("/xdg", "ropetext", "keymap.toml") {
		t.Errorf("DefaultKeymapPath() = %q", got)
	}
}
