package keymap

// Default returns the built-in bindings.
func Default() *Keymap {
	return &Keymap{
		Name: "default",
		Bindings: []Binding{
			// Movement - arrows
			{Keys: "Up", Action: "cursor.up", Category: "Movement"},
			{Keys: "Down", Action: "cursor.down", Category: "Movement"},
			{Keys: "Right", Action: "cursor.forward", Category: "Movement"},
			{Keys: "Left", Action: "cursor.backward", Category: "Movement"},
			{Keys: "S-Up", Action: "select.up", Category: "Selection"},
			{Keys: "S-Down", Action: "select.down", Category: "Selection"},
			{Keys: "S-Right", Action: "select.forward", Category: "Selection"},
			{Keys: "S-Left", Action: "select.backward", Category: "Selection"},

			// Movement - paragraphs and lines
			{Keys: "A-Up", Action: "cursor.paragraphUp", Category: "Movement"},
			{Keys: "A-Down", Action: "cursor.paragraphDown", Category: "Movement"},
			{Keys: "A-Left", Action: "cursor.lineBegin", Category: "Movement"},
			{Keys: "A-Right", Action: "cursor.lineEnd", Category: "Movement"},
			{Keys: "A-S-Up", Action: "select.paragraphUp", Category: "Selection"},
			{Keys: "A-S-Down", Action: "select.paragraphDown", Category: "Selection"},
			{Keys: "A-S-Left", Action: "select.lineBegin", Category: "Selection"},
			{Keys: "A-S-Right", Action: "select.lineEnd", Category: "Selection"},
			{Keys: "Home", Action: "cursor.lineBegin", Category: "Movement"},
			{Keys: "End", Action: "cursor.lineEnd", Category: "Movement"},
			{Keys: "S-Home", Action: "select.lineBegin", Category: "Selection"},
			{Keys: "S-End", Action: "select.lineEnd", Category: "Selection"},
			{Keys: "C-Home", Action: "cursor.bufferBegin", Category: "Movement"},
			{Keys: "C-End", Action: "cursor.bufferEnd", Category: "Movement"},
			{Keys: "C-S-Home", Action: "select.bufferBegin", Category: "Selection"},
			{Keys: "C-S-End", Action: "select.bufferEnd", Category: "Selection"},

			// Movement - words
			{Keys: "C-Right", Action: "cursor.wordForward", Category: "Movement"},
			{Keys: "C-Left", Action: "cursor.wordBackward", Category: "Movement"},
			{Keys: "C-S-Right", Action: "select.wordForward", Category: "Selection"},
			{Keys: "C-S-Left", Action: "select.wordBackward", Category: "Selection"},

			// Lines
			{Keys: "C-Up", Action: "line.moveUp", Category: "Editing"},
			{Keys: "C-Down", Action: "line.moveDown", Category: "Editing"},

			// Multiple cursors
			{Keys: "C-S-Up", Action: "selection.addAbove", Category: "Selection"},
			{Keys: "C-S-Down", Action: "selection.addBelow", Category: "Selection"},
			{Keys: "Esc", Action: "selection.clear", Category: "Selection"},

			// Fixed keys
			{Keys: "Tab", Action: "edit.tab", Category: "Editing"},
			{Keys: "Backtab", Action: "edit.unindent", Category: "Editing"},
			{Keys: "Enter", Action: "edit.newline", Category: "Editing"},
			{Keys: "BS", Action: "edit.backspace", Category: "Editing"},
			{Keys: "Del", Action: "edit.delete", Category: "Editing"},

			// Ctrl
			{Keys: "C-a", Action: "select.all", Category: "Selection"},
			{Keys: "C-d", Action: "edit.duplicateLines", Category: "Editing"},
			{Keys: "C-z", Action: "history.undo", Category: "History"},
			{Keys: "C-y", Action: "history.redo", Category: "History"},
			{Keys: "C-s", Action: ActionSave, Description: "Save the file", Category: "File"},
			{Keys: "C-q", Action: ActionQuit, Description: "Quit", Category: "File"},
			{Keys: "C-n", Action: ActionNext, Description: "Next open file", Category: "File"},
			{Keys: "C-p", Action: ActionPrev, Description: "Previous open file", Category: "File"},

			// Alt - home row movement
			{Keys: "A-i", Action: "cursor.up", Category: "Movement"},
			{Keys: "A-k", Action: "cursor.down", Category: "Movement"},
			{Keys: "A-j", Action: "cursor.backward", Category: "Movement"},
			{Keys: "A-l", Action: "cursor.forward", Category: "Movement"},
			{Keys: "A-I", Action: "select.up", Category: "Selection"},
			{Keys: "A-K", Action: "select.down", Category: "Selection"},
			{Keys: "A-J", Action: "select.backward", Category: "Selection"},
			{Keys: "A-L", Action: "select.forward", Category: "Selection"},
			{Keys: "A-p", Action: "cursor.wordForward", Category: "Movement"},
			{Keys: "A-o", Action: "cursor.wordBackward", Category: "Movement"},
			{Keys: "A-P", Action: "select.wordForward", Category: "Selection"},
			{Keys: "A-O", Action: "select.wordBackward", Category: "Selection"},
			{Keys: "A-u", Action: "cursor.paragraphUp", Category: "Movement"},
			{Keys: "A-h", Action: "cursor.paragraphDown", Category: "Movement"},
			{Keys: "A-U", Action: "select.paragraphUp", Category: "Selection"},
			{Keys: "A-H", Action: "select.paragraphDown", Category: "Selection"},
			{Keys: "A-a", Action: "cursor.lineBegin", Category: "Movement"},
			{Keys: "A-z", Action: "cursor.lineEnd", Category: "Movement"},
			{Keys: "A-A", Action: "select.lineBegin", Category: "Selection"},
			{Keys: "A-Z", Action: "select.lineEnd", Category: "Selection"},

			// Alt - selection and editing
			{Keys: "A-w", Action: "select.word", Category: "Selection"},
			{Keys: "A-e", Action: "select.line", Category: "Selection"},
			{Keys: "A-s", Action: "selection.swap", Category: "Selection"},
			{Keys: "A-S", Action: "selection.duplicate", Category: "Editing"},
			{Keys: "A-d", Action: "edit.delete", Category: "Editing"},
			{Keys: "A-D", Action: "edit.deleteLines", Category: "Editing"},
			{Keys: "A-b", Action: "edit.backspace", Category: "Editing"},
			{Keys: "A-B", Action: "edit.backspaceLines", Category: "Editing"},
			{Keys: "A-Space", Action: "edit.space", Category: "Editing"},
			{Keys: "A-y", Action: "edit.indent", Category: "Editing"},
			{Keys: "A-Y", Action: "edit.unindent", Category: "Editing"},
			{Keys: "A-m", Action: "line.moveDown", Category: "Editing"},
			{Keys: "A-M", Action: "line.moveUp", Category: "Editing"},
		},
	}
}
