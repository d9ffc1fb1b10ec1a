package rope

import (
	"io"
	"unicode/utf8"
)

// Builder provides incremental construction of a rope. Leaves are cut as
// soon as enough code points arrive, so memory stays proportional to the
// finished rope. The zero value is ready to use.
type Builder struct {
	leaves  []*node
	pending []rune
	partial []byte
	length  int
}

// NewBuilder creates a new rope builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WriteString appends a string to the builder.
func (b *Builder) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

// Write implements io.Writer. A UTF-8 sequence split across calls is held
// until the rest of it arrives.
func (b *Builder) Write(p []byte) (int, error) {
	data := p
	if len(b.partial) > 0 {
		data = append(b.partial, p...)
		b.partial = nil
	}
	for len(data) > 0 {
		if !utf8.FullRune(data) {
			b.partial = append([]byte(nil), data...)
			break
		}
		ch, size := utf8.DecodeRune(data)
		b.push(ch)
		data = data[size:]
	}
	return len(p), nil
}

// WriteRune appends a single code point.
func (b *Builder) WriteRune(ch rune) (int, error) {
	b.push(ch)
	return utf8.RuneLen(ch), nil
}

// WriteRunes appends code points.
func (b *Builder) WriteRunes(text []rune) {
	for _, ch := range text {
		b.push(ch)
	}
}

// ReadFrom implements io.ReaderFrom.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += int64(n)
			_, _ = b.Write(buf[:n])
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

func (b *Builder) push(ch rune) {
	b.pending = append(b.pending, ch)
	b.length++
	if len(b.pending) >= LeafCapacity {
		b.leaves = append(b.leaves, newLeaf(b.pending[:LeafCapacity/2]))
		b.pending = append(b.pending[:0], b.pending[LeafCapacity/2:]...)
	}
}

// Len returns the number of code points written so far.
func (b *Builder) Len() int {
	return b.length + len(b.partial)
}

// Reset discards everything written.
func (b *Builder) Reset() {
	for _, leaf := range b.leaves {
		leaf.release()
	}
	b.leaves = nil
	b.pending = b.pending[:0]
	b.partial = nil
	b.length = 0
}

// Build returns the rope and resets the builder. Trailing bytes of an
// incomplete UTF-8 sequence become utf8.RuneError.
func (b *Builder) Build() Rope {
	for range b.partial {
		b.push(utf8.RuneError)
	}
	leaves := b.leaves
	if len(b.pending) > 0 {
		leaves = append(leaves, newLeaf(b.pending))
	}
	b.leaves = nil
	b.pending = b.pending[:0]
	b.partial = nil
	b.length = 0
	return Rope{root: build(leaves)}
}
