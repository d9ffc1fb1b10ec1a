package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// bindMods are the modifiers a binding can name.
const bindMods = tcell.ModShift | tcell.ModCtrl | tcell.ModAlt

// Key is a normalized key press. Code is tcell.KeyRune for characters,
// with the character in Rune. Shift is folded into the character, so
// Alt+Shift+i is Key{Code: tcell.KeyRune, Rune: 'I', Mod: tcell.ModAlt}.
// Ctrl+letter uses the lower-case letter.
type Key struct {
	Code tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// KeyOf normalizes a tcell key event.
func KeyOf(ev *tcell.EventKey) Key {
	return normalize(ev.Key(), ev.Rune(), ev.Modifiers())
}

func normalize(code tcell.Key, ch rune, mod tcell.ModMask) Key {
	mod &= bindMods
	switch code {
	case tcell.KeyBackspace2:
		code = tcell.KeyBackspace
	case tcell.KeyTab, tcell.KeyEnter, tcell.KeyBackspace, tcell.KeyEscape:
	default:
		if code >= tcell.KeyCtrlA && code <= tcell.KeyCtrlZ {
			ch = 'a' + rune(code-tcell.KeyCtrlA)
			code = tcell.KeyRune
			mod |= tcell.ModCtrl
		}
	}
	if code != tcell.KeyRune {
		return Key{Code: code, Mod: mod}
	}

	if mod&tcell.ModShift != 0 {
		ch = unicode.ToUpper(ch)
		mod &^= tcell.ModShift
	}
	if mod&tcell.ModCtrl != 0 {
		ch = unicode.ToLower(ch)
	}
	return Key{Code: tcell.KeyRune, Rune: ch, Mod: mod}
}

// IsText reports whether k types its character: a rune with neither
// Ctrl nor Alt held.
func (k Key) IsText() bool {
	return k.Code == tcell.KeyRune && k.Mod&(tcell.ModCtrl|tcell.ModAlt) == 0 && unicode.IsPrint(k.Rune)
}

var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,
	"del":       tcell.KeyDelete,
	"delete":    tcell.KeyDelete,
	"bs":        tcell.KeyBackspace,
	"backspace": tcell.KeyBackspace,
	"tab":       tcell.KeyTab,
	"backtab":   tcell.KeyBacktab,
	"cr":        tcell.KeyEnter,
	"enter":     tcell.KeyEnter,
	"return":    tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
}

// displayNames gives the canonical spelling used by Key.String.
var displayNames = map[tcell.Key]string{
	tcell.KeyUp:        "Up",
	tcell.KeyDown:      "Down",
	tcell.KeyLeft:      "Left",
	tcell.KeyRight:     "Right",
	tcell.KeyHome:      "Home",
	tcell.KeyEnd:       "End",
	tcell.KeyPgUp:      "PgUp",
	tcell.KeyPgDn:      "PgDn",
	tcell.KeyInsert:    "Insert",
	tcell.KeyDelete:    "Del",
	tcell.KeyBackspace: "BS",
	tcell.KeyTab:       "Tab",
	tcell.KeyBacktab:   "Backtab",
	tcell.KeyEnter:     "Enter",
	tcell.KeyEscape:    "Esc",
}

// ParseKey parses a key specification.
//
// Supported formats:
//   - Single character: "a", "I", "."
//   - Special keys: "Enter", "Esc", "Tab", "BS", "Del", "Up", "Space"
//   - Vim-style modifiers: "C-s", "A-i", "C-S-Up", "<C-s>"
//   - Readable modifiers: "Ctrl+S", "Alt+Shift+Up"
func ParseKey(spec string) (Key, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Key{}, ErrEmptySpec
	}
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		spec = spec[1 : len(spec)-1]
	}

	sep := "-"
	if strings.Contains(spec, "+") && len(spec) > 1 {
		sep = "+"
	}
	parts := strings.Split(spec, sep)
	// A trailing separator means the key is the separator itself: "C--".
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = append(parts[:len(parts)-2], sep)
	}

	var mod tcell.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c", "ctrl", "control":
			mod |= tcell.ModCtrl
		case "a", "m", "alt", "meta":
			mod |= tcell.ModAlt
		case "s", "shift":
			mod |= tcell.ModShift
		default:
			return Key{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
	}

	last := parts[len(parts)-1]
	if code, ok := keyNames[strings.ToLower(last)]; ok {
		return normalize(code, 0, mod), nil
	}
	if strings.EqualFold(last, "space") {
		return normalize(tcell.KeyRune, ' ', mod), nil
	}
	runes := []rune(last)
	if len(runes) != 1 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	return normalize(tcell.KeyRune, runes[0], mod), nil
}

// String returns the canonical specification, e.g. "C-S-Up" or "A-I".
func (k Key) String() string {
	var sb strings.Builder
	if k.Mod&tcell.ModCtrl != 0 {
		sb.WriteString("C-")
	}
	if k.Mod&tcell.ModAlt != 0 {
		sb.WriteString("A-")
	}
	if k.Mod&tcell.ModShift != 0 {
		sb.WriteString("S-")
	}
	switch {
	case k.Code == tcell.KeyRune && k.Rune == ' ':
		sb.WriteString("Space")
	case k.Code == tcell.KeyRune:
		sb.WriteRune(k.Rune)
	case displayNames[k.Code] != "":
		sb.WriteString(displayNames[k.Code])
	default:
		fmt.Fprintf(&sb, "Key(%d)", k.Code)
	}
	return sb.String()
}
