package buffer

import "github.com/dshills/ropetext/internal/engine/history"

// Default configuration values.
const (
	DefaultTabWidth     = 4
	DefaultHistoryLimit = history.DefaultLimit
)

// Option is a functional option for configuring a TextBuffer.
type Option func(*TextBuffer)

// WithTabWidth sets the width of one indentation step and of tab stops.
func WithTabWidth(width int) Option {
	return func(b *TextBuffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithHardTabs makes tab and indent insert '\t' instead of spaces.
func WithHardTabs(hard bool) Option {
	return func(b *TextBuffer) {
		b.hardTabs = hard
	}
}

// WithHistoryLimit sets the maximum number of undo snapshots.
func WithHistoryLimit(limit int) Option {
	return func(b *TextBuffer) {
		if limit > 0 {
			b.historyLimit = limit
		}
	}
}

// WithObserver registers fn to be called after every committed action,
// undo and redo.
func WithObserver(fn Observer) Option {
	return func(b *TextBuffer) {
		b.observer = fn
	}
}
