// Package textio reads files into ropes and writes ropes back to files.
//
// Files are decoded as UTF-8, or UTF-16 when a byte order mark says so,
// with invalid bytes replaced by U+FFFD. Line endings are normalized to
// '\n' on load and restored on save. A file's single trailing newline is
// not part of the text: Decode drops it and Encode writes it back.
package textio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dshills/ropetext/internal/engine/rope"
)

// Errors returned by this package.
var (
	// ErrIsDirectory is returned when a path names a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrDecode is returned when the content cannot be read.
	ErrDecode = errors.New("decoding failed")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Format records how a file was stored so it can be saved the same way.
type Format struct {
	Ending LineEnding
	BOM    bool // a UTF-8 byte order mark preceded the text
}

// Decode reads all of r into a new rope. The caller owns the rope.
func Decode(r io.Reader) (rope.Rope, Format, error) {
	var f Format

	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		f.BOM = true
	}

	norm := &normalizer{}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	tr := transform.NewReader(br, transform.Chain(decoder, norm))

	var b rope.Builder
	if _, err := b.ReadFrom(tr); err != nil {
		b.Reset()
		return rope.New(), f, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	text := b.Build()
	f.Ending = norm.counts.majority()

	if n := text.Len(); n > 0 {
		if last, _ := text.At(n - 1); last == '\n' {
			trimmed := text.Prefix(n - 1)
			text.Release()
			text = trimmed
		}
	}
	return text, f, nil
}

// Load reads the file at path. A missing file is not an error: it yields
// an empty rope and the default format, so new files can be created.
func Load(path string) (rope.Rope, Format, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return rope.New(), Format{}, nil
	}
	if err != nil {
		return rope.New(), Format{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return rope.New(), Format{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return rope.New(), Format{}, fmt.Errorf("load %s: %w", path, ErrIsDirectory)
	}

	text, f, err := Decode(file)
	if err != nil {
		return text, f, fmt.Errorf("load %s: %w", path, err)
	}
	return text, f, nil
}

// Encode writes text to w in format f, followed by one line ending.
func Encode(w io.Writer, text rope.Rope, f Format) error {
	bw := bufio.NewWriter(w)
	if f.BOM {
		if _, err := bw.Write(utf8BOM); err != nil {
			return err
		}
	}

	newline := f.Ending.Sequence()
	var err error
	text.ForEach(func(_ int, ch rune) bool {
		if ch == '\n' {
			_, err = bw.WriteString(newline)
		} else {
			_, err = bw.WriteRune(ch)
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	if _, err := bw.WriteString(newline); err != nil {
		return err
	}
	return bw.Flush()
}

// Save writes text to path through a temporary file in the same directory
// so a failed write never truncates the original.
func Save(path string, text rope.Rope, f Format) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return fmt.Errorf("save %s: %w", path, ErrIsDirectory)
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, text, f); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
