package keymap

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	"github.com/dshills/ropetext/internal/engine/buffer"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		spec string
		want Key
	}{
		{"a", Key{Code: tcell.KeyRune, Rune: 'a'}},
		{"I", Key{Code: tcell.KeyRune, Rune: 'I'}},
		{"S-i", Key{Code: tcell.KeyRune, Rune: 'I'}},
		{".", Key{Code: tcell.KeyRune, Rune: '.'}},
		{"-", Key{Code: tcell.KeyRune, Rune: '-'}},
		{"C--", Key{Code: tcell.KeyRune, Rune: '-', Mod: tcell.ModCtrl}},
		{"Space", Key{Code: tcell.KeyRune, Rune: ' '}},
		{"A-Space", Key{Code: tcell.KeyRune, Rune: ' ', Mod: tcell.ModAlt}},
		{"C-s", Key{Code: tcell.KeyRune, Rune: 's', Mod: tcell.ModCtrl}},
		{"C-S", Key{Code: tcell.KeyRune, Rune: 's', Mod: tcell.ModCtrl}},
		{"<C-s>", Key{Code: tcell.KeyRune, Rune: 's', Mod: tcell.ModCtrl}},
		{"Ctrl+S", Key{Code: tcell.KeyRune, Rune: 's', Mod: tcell.ModCtrl}},
		{"A-I", Key{Code: tcell.KeyRune, Rune: 'I', Mod: tcell.ModAlt}},
		{"M-i", Key{Code: tcell.KeyRune, Rune: 'i', Mod: tcell.ModAlt}},
		{"Alt+Shift+i", Key{Code: tcell.KeyRune, Rune: 'I', Mod: tcell.ModAlt}},
		{"Up", Key{Code: tcell.KeyUp}},
		{"C-S-Up", Key{Code: tcell.KeyUp, Mod: tcell.ModCtrl | tcell.ModShift}},
		{"S-Home", Key{Code: tcell.KeyHome, Mod: tcell.ModShift}},
		{"enter", Key{Code: tcell.KeyEnter}},
		{"BS", Key{Code: tcell.KeyBackspace}},
		{"Del", Key{Code: tcell.KeyDelete}},
		{"Esc", Key{Code: tcell.KeyEscape}},
		{"Backtab", Key{Code: tcell.KeyBacktab}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseKey(tt.spec)
			if err != nil {
				t.Fatalf("ParseKey(%q) error = %v", tt.spec, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseKey(%q) mismatch (-want +got):\n%s", tt.spec, diff)
			}
		})
	}
}

func TestParseKeyErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"X-a", ErrInvalidSpec},
		{"C-foo", ErrInvalidSpec},
		{"ab", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := ParseKey(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseKey(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Key
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Key{Code: tcell.KeyRune, Rune: 'x'}},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), Key{Code: tcell.KeyRune, Rune: 's', Mod: tcell.ModCtrl}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'I', tcell.ModAlt), Key{Code: tcell.KeyRune, Rune: 'I', Mod: tcell.ModAlt}},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Key{Code: tcell.KeyBackspace}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), Key{Code: tcell.KeyTab}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Key{Code: tcell.KeyEnter}},
		{"ctrl shift up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModCtrl|tcell.ModShift), Key{Code: tcell.KeyUp, Mod: tcell.ModCtrl | tcell.ModShift}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, KeyOf(tt.ev)); diff != "" {
				t.Errorf("KeyOf() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeFoldsShift(t *testing.T) {
	got := normalize(tcell.KeyRune, 'i', tcell.ModAlt|tcell.ModShift)
	want := Key{Code: tcell.KeyRune, Rune: 'I', Mod: tcell.ModAlt}
	if got != want {
		t.Errorf("normalize() = %v, want %v", got, want)
	}
}

func TestKeyString(t *testing.T) {
	for _, spec := range []string{"a", "C-s", "A-I", "C-S-Up", "A-Space", "Enter", "BS", "C-A-Del"} {
		k, err := ParseKey(spec)
		if err != nil {
			t.Fatalf("ParseKey(%q) error = %v", spec, err)
		}
		if got := k.String(); got != spec {
			t.Errorf("ParseKey(%q).String() = %q", spec, got)
		}
	}
}

func TestKeyIsText(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{Key{Code: tcell.KeyRune, Rune: 'a'}, true},
		{Key{Code: tcell.KeyRune, Rune: ' '}, true},
		{Key{Code: tcell.KeyRune, Rune: 'é'}, true},
		{Key{Code: tcell.KeyRune, Rune: 'a', Mod: tcell.ModCtrl}, false},
		{Key{Code: tcell.KeyRune, Rune: 'a', Mod: tcell.ModAlt}, false},
		{Key{Code: tcell.KeyEnter}, false},
	}

	for _, tt := range tests {
		if got := tt.key.IsText(); got != tt.want {
			t.Errorf("%v.IsText() = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestDefaultKeymap(t *testing.T) {
	km := Default()
	if err := km.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	seen := make(map[Key]string)
	for _, b := range km.Bindings {
		key, _ := ParseKey(b.Keys)
		if prev, ok := seen[key]; ok {
			t.Errorf("%s bound twice: %s and %s", b.Keys, prev, b.Action)
		}
		seen[key] = b.Action
	}
}

func TestKeymapValidate(t *testing.T) {
	km := NewKeymap("bad").
		Add("C-s", "file.save").
		Add("X-y", "cursor.up").
		Add("a", "no.such.action")

	err := km.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("Validate() reported %d errors, want 2: %v", n, err)
	}
	if !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("Validate() error = %v, want it to wrap ErrInvalidSpec", err)
	}
}

func TestKeymapMerge(t *testing.T) {
	user := NewKeymap("user").Add("<C-d>", "edit.deleteLines")
	km := Default().Merge(user)

	key, _ := ParseKey("C-d")
	b, ok := km.Lookup(key)
	if !ok || b.Action != "edit.deleteLines" {
		t.Errorf("Lookup(C-d) = %v, %v, want edit.deleteLines", b, ok)
	}

	// Default itself is untouched.
	b, _ = Default().Lookup(key)
	if b.Action != "edit.duplicateLines" {
		t.Errorf("Default().Lookup(C-d) = %q", b.Action)
	}
}

func TestKeymapMergeBorrowsDescription(t *testing.T) {
	user := NewKeymap("user").
		Add("C-w", ActionSave).
		AddBinding(NewBinding("C-o", ActionQuit).WithDescription("Leave"))
	km := Default().Merge(user)

	tests := []struct {
		keys     string
		desc     string
		category string
	}{
		{"C-w", "Save the file", "File"},
		{"C-o", "Leave", "File"},
	}
	for _, tt := range tests {
		key, _ := ParseKey(tt.keys)
		b, ok := km.Lookup(key)
		if !ok {
			t.Fatalf("Lookup(%s) missing", tt.keys)
		}
		if b.Description != tt.desc || b.Category != tt.category {
			t.Errorf("Lookup(%s) = %q/%q, want %q/%q", tt.keys, b.Description, b.Category, tt.desc, tt.category)
		}
	}
	if user.Bindings[0].Description != "" {
		t.Error("Merge modified the merged keymap")
	}
}

func TestKeymapLookupAfterAdd(t *testing.T) {
	km := NewKeymap("test").Add("C-k", "edit.deleteLines")
	key, _ := ParseKey("C-k")
	if _, ok := km.Lookup(key); !ok {
		t.Fatal("Lookup(C-k) missing")
	}

	km.Add("C-k", "edit.backspaceLines")
	if b, _ := km.Lookup(key); b.Action != "edit.backspaceLines" {
		t.Errorf("Lookup(C-k) = %q after rebinding", b.Action)
	}
}

func TestKeymapResolve(t *testing.T) {
	km := Default()
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		action string
		ok     bool
	}{
		{"bound", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), "history.undo", true},
		{"text", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionInsert, true},
		{"alt bound", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModAlt), "cursor.down", true},
		{"alt unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "", false},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := km.Resolve(tt.ev)
			if action != tt.action || ok != tt.ok {
				t.Errorf("Resolve() = %q, %v, want %q, %v", action, ok, tt.action, tt.ok)
			}
		})
	}
}

func TestKeymapHandle(t *testing.T) {
	b := buffer.NewFromString("")
	defer b.Close()
	km := Default()

	for _, ch := range "hi" {
		if _, ran := km.Handle(b, tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)); !ran {
			t.Fatalf("typing %q did not run", ch)
		}
	}
	km.Handle(b, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	km.Handle(b, tcell.NewEventKey(tcell.KeyRune, '!', tcell.ModNone))
	if got := b.Text(); got != "hi\n!" {
		t.Fatalf("Text() = %q, want %q", got, "hi\n!")
	}

	km.Handle(b, tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if got := b.Text(); got != "hi\n" {
		t.Errorf("Text() after backspace = %q", got)
	}

	km.Handle(b, tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	if got := b.Text(); got != "hi\n!" {
		t.Errorf("Text() after undo = %q", got)
	}

	action, ran := km.Handle(b, tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	if action != ActionSave || ran {
		t.Errorf("Handle(C-s) = %q, %v, want %q, false", action, ran, ActionSave)
	}
}

func TestRunUnknown(t *testing.T) {
	b := buffer.NewFromString("x")
	defer b.Close()

	if Run(b, "no.such.action") {
		t.Error("Run() = true for an unknown action")
	}
	if Run(b, ActionQuit) {
		t.Error("Run() = true for an action the caller handles")
	}
}

func TestActions(t *testing.T) {
	names := Actions()
	if !slices.IsSorted(names) {
		t.Error("Actions() is not sorted")
	}
	for _, name := range names {
		if !IsAction(name) {
			t.Errorf("IsAction(%q) = false", name)
		}
	}
	for _, b := range Default().Bindings {
		if !slices.Contains(names, b.Action) {
			t.Errorf("default binding %s names unlisted action %q", b.Keys, b.Action)
		}
	}
}

func TestLoadReader(t *testing.T) {
	data := `
name = "mine"

[[bindings]]
keys = "C-k"
action = "edit.deleteLines"
description = "Delete lines"

[[bindings]]
keys = "A-x"
action = "app.quit"
`
	km, err := LoadReader(strings.NewReader(data))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}

	want := []Binding{
		{Keys: "C-k", Action: "edit.deleteLines", Description: "Delete lines"},
		{Keys: "A-x", Action: "app.quit"},
	}
	if km.Name != "mine" {
		t.Errorf("Name = %q, want mine", km.Name)
	}
	if diff := cmp.Diff(want, km.Bindings); diff != "" {
		t.Errorf("Bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "name = "},
		{"unknown field", "colour = 1"},
		{"bad key", "[[bindings]]\nkeys = \"Q-a\"\naction = \"cursor.up\""},
		{"bad action", "[[bindings]]\nkeys = \"C-a\"\naction = \"nope\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadReader(strings.NewReader(tt.data)); err == nil {
				t.Error("LoadReader() error = nil")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	km, err := LoadFile(filepath.Join(t.TempDir(), "keymap.toml"))
	if err != nil || km != nil {
		t.Errorf("LoadFile(missing) = %v, %v, want nil, nil", km, err)
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.toml")
	km := NewKeymap("saved").
		AddBinding(NewBinding("C-k", "edit.deleteLines").WithCategory("Editing")).
		Add("A-x", ActionQuit)

	if err := km.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if diff := cmp.Diff(km.Bindings, got.Bindings); diff != "" {
		t.Errorf("Bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	km := Default()
	c := km.Clone()
	c.Bindings[0].Action = "cursor.down"
	if km.Bindings[0].Action == "cursor.down" {
		t.Error("Clone() shares bindings with the original")
	}
}
