package keymap

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"

	"github.com/dshills/ropetext/internal/engine/buffer"
)

// Keymap holds key bindings. When two bindings name the same key the
// later one wins.
type Keymap struct {
	// Name is the keymap identifier.
	Name string `toml:"name"`

	// Bindings are the key-to-action mappings.
	Bindings []Binding `toml:"bindings"`

	index map[Key]int
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	return k.AddBinding(NewBinding(keys, action))
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	k.index = nil
	return k
}

// Merge appends the bindings of other, overriding equal keys. A binding
// without a description or category borrows them from an existing
// binding of the same action.
func (k *Keymap) Merge(other *Keymap) *Keymap {
	if other == nil {
		return k
	}
	for _, b := range other.Bindings {
		if i := slices.IndexFunc(k.Bindings, func(kb Binding) bool { return kb.Action == b.Action }); i >= 0 {
			known := k.Bindings[i]
			if b.Description == "" {
				b = b.WithDescription(known.Description)
			}
			if b.Category == "" {
				b = b.WithCategory(known.Category)
			}
		}
		k.Bindings = append(k.Bindings, b)
	}
	k.index = nil
	return k
}

// Validate checks that every binding parses and names a known action.
// All problems are reported together.
func (k *Keymap) Validate() error {
	var errs error
	for i, b := range k.Bindings {
		if _, err := ParseKey(b.Keys); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("binding %d (%s): %w", i, b.Keys, err))
			continue
		}
		if !IsAction(b.Action) {
			errs = multierr.Append(errs, fmt.Errorf("binding %d (%s): unknown action %q", i, b.Keys, b.Action))
		}
	}
	return errs
}

// Lookup returns the binding for key.
func (k *Keymap) Lookup(key Key) (Binding, bool) {
	if k.index == nil {
		k.reindex()
	}
	i, ok := k.index[key]
	if !ok {
		return Binding{}, false
	}
	return k.Bindings[i], true
}

func (k *Keymap) reindex() {
	k.index = make(map[Key]int, len(k.Bindings))
	for i, b := range k.Bindings {
		if key, err := ParseKey(b.Keys); err == nil {
			k.index[key] = i
		}
	}
}

// Resolve maps a key event to an action name. A text key with no binding
// resolves to ActionInsert.
func (k *Keymap) Resolve(ev *tcell.EventKey) (string, bool) {
	key := KeyOf(ev)
	if b, ok := k.Lookup(key); ok {
		return b.Action, true
	}
	if key.IsText() {
		return ActionInsert, true
	}
	return "", false
}

// Handle resolves ev and runs it when it is a buffer action. It returns
// the action name and whether it ran; an action that did not run belongs
// to the caller, such as file.save.
func (k *Keymap) Handle(b *buffer.TextBuffer, ev *tcell.EventKey) (string, bool) {
	action, ok := k.Resolve(ev)
	if !ok {
		return "", false
	}
	if action == ActionInsert {
		b.EditChar(KeyOf(ev).Rune, 1)
		return action, true
	}
	return action, Run(b, action)
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	return &Keymap{
		Name:     k.Name,
		Bindings: slices.Clone(k.Bindings),
	}
}
