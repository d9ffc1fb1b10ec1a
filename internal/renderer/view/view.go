// Package view draws a TextBuffer onto a tcell screen: a line-number
// gutter, the visible window of text with its selections, and a status
// line. The window scrolls to keep the primary cursor inside the scroll
// margins.
package view

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/ropetext/internal/engine/buffer"
	"github.com/dshills/ropetext/internal/engine/cursor"
	"github.com/dshills/ropetext/internal/engine/rope"
	"github.com/dshills/ropetext/internal/renderer/layout"
	"github.com/dshills/ropetext/internal/renderer/viewport"
)

// NoName is shown in the status line for a buffer without a file.
const NoName = "[No Name]"

// View renders one buffer. It is not safe for concurrent use.
type View struct {
	screen tcell.Screen
	buf    *buffer.TextBuffer
	name   string

	vp    *viewport.Viewport
	tabs  *layout.TabExpander
	theme Theme

	lineNumbers bool
	message     string
	dirty       bool
}

// Option configures a View.
type Option func(*View)

// WithLineNumbers shows or hides the gutter.
func WithLineNumbers(on bool) Option {
	return func(v *View) { v.lineNumbers = on }
}

// WithScrollMargin sets how many rows stay visible around the cursor.
func WithScrollMargin(rows int) Option {
	return func(v *View) { v.vp.SetMargins(viewport.UniformMargins(rows)) }
}

// WithTheme sets the styles.
func WithTheme(t Theme) Option {
	return func(v *View) { v.theme = t }
}

// New creates a view of buf on screen. name is shown in the status line.
func New(screen tcell.Screen, buf *buffer.TextBuffer, name string, opts ...Option) *View {
	w, h := screen.Size()
	v := &View{
		screen:      screen,
		buf:         buf,
		name:        name,
		vp:          viewport.NewViewport(w, h-1),
		tabs:        layout.NewTabExpander(buf.TabWidth()),
		theme:       DefaultTheme(),
		lineNumbers: true,
		dirty:       true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetBuffer switches to another buffer.
func (v *View) SetBuffer(buf *buffer.TextBuffer, name string) {
	v.buf = buf
	v.name = name
	v.vp.ScrollTo(0)
	v.dirty = true
}

// SetName changes the name in the status line.
func (v *View) SetName(name string) {
	v.name = name
	v.dirty = true
}

// SetLineNumbers shows or hides the gutter.
func (v *View) SetLineNumbers(on bool) {
	v.lineNumbers = on
	v.dirty = true
}

// SetScrollMargin sets how many rows stay visible around the cursor.
func (v *View) SetScrollMargin(rows int) {
	v.vp.SetMargins(viewport.UniformMargins(rows))
	v.dirty = true
}

// SetMessage shows msg in the status line until it is replaced.
func (v *View) SetMessage(msg string) {
	v.message = msg
	v.dirty = true
}

// Invalidate forces the next Update to redraw, e.g. after a resize.
func (v *View) Invalidate() {
	v.dirty = true
}

// Viewport returns the scroll state.
func (v *View) Viewport() *viewport.Viewport {
	return v.vp
}

// GutterWidth returns the width of the line-number gutter: the digits of
// the highest row number and one space.
func (v *View) GutterWidth() int {
	if !v.lineNumbers {
		return 0
	}
	return len(strconv.Itoa(v.buf.LineCount()+1)) + 1
}

// Update redraws when the buffer reported damage since the last call or
// the view was invalidated. Returns true if it drew.
func (v *View) Update() bool {
	text := v.buf.TakeTextDamage()
	cur := v.buf.TakeCursorDamage()
	if !text && !cur && !v.dirty {
		return false
	}
	v.Draw()
	return true
}

// Draw redraws the whole screen.
func (v *View) Draw() {
	v.dirty = false
	w, h := v.screen.Size()
	gutter := v.GutterWidth()
	v.tabs.SetTabWidth(v.buf.TabWidth())
	v.vp.Resize(w-gutter, h-1)
	v.vp.SetRows(v.buf.LineCount() + 1)

	text := v.buf.Rope()
	defer text.Release()

	primary := v.buf.Primary()
	at := text.IndexToPoint(primary.Cursor)
	cursorCol := v.tabs.IndexToColumn(v.buf.LineText(at.Row), at.Col)
	v.vp.ScrollToReveal(at.Row, cursorCol)

	v.screen.Clear()
	v.drawText(text, gutter, w)
	v.drawStatus(w, h, at)

	x := gutter + v.vp.ColumnToScreen(cursorCol)
	y := v.vp.RowToScreen(at.Row)
	if y >= 0 && y < h-1 && x >= gutter && x < w {
		v.screen.ShowCursor(x, y)
	} else {
		v.screen.HideCursor()
	}
	v.screen.Show()
}

// drawText draws the visible rows, visiting only the code points inside
// the window.
func (v *View) drawText(text rope.Rope, gutter, w int) {
	first, last := v.vp.VisibleRows()
	lastRow := text.LineCount()
	sels := v.buf.Selections()

	end := min(last, lastRow)
	row := first
	start := text.LineStart(row)
	var runes []rune
	flush := func() {
		y := row - first
		if gutter > 0 {
			v.drawString(0, y, fmt.Sprintf("%*d ", gutter-1, row+1), v.theme.Gutter)
		}
		v.drawRow(y, gutter, w, start, string(runes), sels)
	}
	if first <= end {
		text.ForEachRange(start, text.LineEnd(end), func(i int, ch rune) bool {
			if ch != '\n' {
				runes = append(runes, ch)
				return true
			}
			flush()
			row++
			start = i + 1
			runes = runes[:0]
			return true
		})
		flush()
	}

	for y := end - first + 1; y < v.vp.Height(); y++ {
		v.screen.SetContent(0, y, '~', nil, v.theme.Filler)
	}
}

func (v *View) drawRow(y, gutter, w, start int, s string, sels []cursor.Selection) {
	line := v.tabs.Layout(s)
	left := v.vp.LeftColumn()

	put := func(col, width int, ch rune, style tcell.Style) {
		x := gutter + col - left
		if x < gutter || x+width > w {
			return
		}
		v.screen.SetContent(x, y, ch, nil, style)
		if ch == ' ' {
			for k := 1; k < width; k++ {
				v.screen.SetContent(x+k, y, ' ', nil, style)
			}
		}
	}

	for _, c := range line.Cells {
		if c.Width == 0 {
			continue
		}
		put(c.Col, c.Width, c.Rune, v.styleAt(start+c.Index, sels))
	}
	// A secondary cursor at the end of the row has no character to sit on.
	if end := start + len(line.Cells); v.secondaryAt(end, sels) {
		put(line.Width, 1, ' ', v.theme.Cursor)
	}
}

func (v *View) styleAt(offset int, sels []cursor.Selection) tcell.Style {
	if v.secondaryAt(offset, sels) {
		return v.theme.Cursor
	}
	for _, sel := range sels {
		if offset >= sel.Head() && offset < sel.Tail() {
			return v.theme.Selection
		}
	}
	return v.theme.Text
}

func (v *View) secondaryAt(offset int, sels []cursor.Selection) bool {
	for _, sel := range sels {
		if !sel.Primary && sel.Cursor == offset {
			return true
		}
	}
	return false
}

// drawStatus fills the last screen row: name, modified flag and message on
// the left, cursor position on the right.
func (v *View) drawStatus(w, h int, at rope.Point) {
	y := h - 1
	if y < 0 {
		return
	}
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, v.theme.Status)
	}

	name := v.name
	if name == "" {
		name = NoName
	}
	left := " " + name
	if v.buf.IsModified() {
		left += " [+]"
	}
	if v.message != "" {
		left += "  " + v.message
	}

	right := fmt.Sprintf("%d:%d ", at.Row+1, at.Col+1)
	if n := len(v.buf.Selections()); n > 1 {
		right = fmt.Sprintf("%d cursors  %s", n, right)
	}
	v.drawString(0, y, left, v.theme.Status)
	v.drawString(w-uniseg.StringWidth(right), y, right, v.theme.Status)
}

// drawString draws s from x and returns the column after it.
func (v *View) drawString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x += max(uniseg.StringWidth(string(r)), 1)
	}
	return x
}
