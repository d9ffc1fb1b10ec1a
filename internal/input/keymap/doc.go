// Package keymap maps terminal key presses to editor actions.
//
// A Keymap is an ordered list of bindings; a later binding for the same
// key overrides an earlier one, so a user keymap is merged on top of
// Default. Keys are written in Vim or readable notation:
//
//	"C-s"      - Ctrl+S
//	"<C-s>"    - Ctrl+S (angle bracket notation)
//	"Ctrl+S"   - Ctrl+S (readable notation)
//	"A-I"      - Alt+Shift+I
//	"C-S-Up"   - Ctrl+Shift+Up
//
// Actions are dotted names such as "cursor.down" or "history.undo". Run
// executes buffer actions; file.save and app.quit are left to the caller.
//
//	km := keymap.Default().Merge(user)
//	if action, ran := km.Handle(buf, ev); !ran {
//	    // handle action
//	}
package keymap
