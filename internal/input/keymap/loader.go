package keymap

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// keymapFile is the on-disk layout of a keymap:
//
//	name = "mine"
//
//	[[bindings]]
//	keys = "C-k"
//	action = "edit.deleteLines"
type keymapFile struct {
	Name     string    `toml:"name"`
	Bindings []Binding `toml:"bindings"`
}

// LoadFile loads a keymap from a TOML file. A missing file yields a nil
// keymap and no error.
func LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	km, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return km, nil
}

// LoadReader decodes a TOML keymap and validates it.
func LoadReader(r io.Reader) (*Keymap, error) {
	var cfg keymapFile
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("decoding keymap at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	km := &Keymap{Name: cfg.Name, Bindings: cfg.Bindings}
	if km.Bindings == nil {
		km.Bindings = make([]Binding, 0)
	}
	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}

// SaveFile writes the keymap as TOML.
func (k *Keymap) SaveFile(path string) error {
	data, err := toml.Marshal(keymapFile{Name: k.Name, Bindings: k.Bindings})
	if err != nil {
		return fmt.Errorf("marshaling keymap: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}
