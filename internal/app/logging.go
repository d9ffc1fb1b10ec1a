package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelWarn:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ParseLogLevel parses a string into a LogLevel. Unknown names map to
// LogLevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger writes leveled JSON log lines through zerolog.
type Logger struct {
	mu       sync.Mutex
	level    LogLevel
	zl       zerolog.Logger
	disabled bool
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is recorded as the "app" field of every line.
	Prefix string
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelInfo,
		Output: os.Stderr,
		Prefix: "ropetext",
	}
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	ctx := zerolog.New(cfg.Output).With().Timestamp()
	if cfg.Prefix != "" {
		ctx = ctx.Str("app", cfg.Prefix)
	}
	return &Logger{
		level: cfg.Level,
		zl:    ctx.Logger(),
	}
}

// OpenLogFile opens path for appending, creating its directory.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

func (l *Logger) derive(add func(zerolog.Context) zerolog.Context) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		level:    l.level,
		zl:       add(l.zl.With()).Logger(),
		disabled: l.disabled,
	}
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.derive(func(c zerolog.Context) zerolog.Context {
		return c.Interface(key, value)
	})
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return l.derive(func(c zerolog.Context) zerolog.Context {
		return c.Fields(fields)
	})
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.derive(func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the minimum log level.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl = l.zl.Output(w)
}

// Disable disables all logging.
func (l *Logger) Disable() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = true
}

// Enable enables logging.
func (l *Logger) Enable() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = false
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LogLevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LogLevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LogLevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LogLevelError, msg, args...)
}

// log writes a log message if the level is enabled.
func (l *Logger) log(level LogLevel, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled || level < l.level {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.zl.WithLevel(level.zerolog()).Msg(msg)
}

// NullLogger is a logger that discards all output.
var NullLogger = &Logger{zl: zerolog.Nop(), disabled: true}

// appLogger is the application-wide logger instance.
var (
	appLoggerMu sync.Mutex
	appLogger   *Logger
)

// GetLogger returns the application logger.
// Creates a default logger on first call if not set.
func GetLogger() *Logger {
	appLoggerMu.Lock()
	defer appLoggerMu.Unlock()
	if appLogger == nil {
		appLogger = NewLogger(DefaultLoggerConfig())
	}
	return appLogger
}

// SetLogger sets the application-wide logger.
// Should be called early in application startup.
func SetLogger(l *Logger) {
	appLoggerMu.Lock()
	defer appLoggerMu.Unlock()
	appLogger = l
}
