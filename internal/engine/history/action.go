package history

// ActionKind tags an open action so that consecutive edits of one kind
// can share an undo step.
type ActionKind uint8

// Action kinds.
const (
	ActionNone ActionKind = iota
	ActionWhitespace
	ActionText
	ActionSymbol
	ActionEdit
	ActionIndent
	ActionUnindent
	ActionDelete
	ActionDeleteLines
	ActionBackspace
	ActionBackspaceLines
	ActionMoveLines
)

var actionNames = [...]string{
	ActionNone:           "none",
	ActionWhitespace:     "whitespace",
	ActionText:           "text",
	ActionSymbol:         "symbol",
	ActionEdit:           "edit",
	ActionIndent:         "indent",
	ActionUnindent:       "unindent",
	ActionDelete:         "delete",
	ActionDeleteLines:    "delete-lines",
	ActionBackspace:      "backspace",
	ActionBackspaceLines: "backspace-lines",
	ActionMoveLines:      "move-lines",
}

// String returns the action name.
func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "unknown"
}

// Coalesces reports whether an open action of kind k absorbs a following
// edit of kind next. Only identical kinds merge, and ActionEdit never
// merges: paste and duplicate each undo on their own.
func (k ActionKind) Coalesces(next ActionKind) bool {
	return k == next && k != ActionNone && k != ActionEdit
}

// ClassOf returns the character class of ch: ActionWhitespace for control
// characters and space, ActionText for letters, digits, underscore and all
// non-ASCII code points, ActionSymbol for the remaining ASCII punctuation.
// Word motion stops where the class changes.
func ClassOf(ch rune) ActionKind {
	switch {
	case ch <= ' ':
		return ActionWhitespace
	case ch > 127,
		ch == '_',
		ch >= '0' && ch <= '9',
		ch >= 'a' && ch <= 'z',
		ch >= 'A' && ch <= 'Z':
		return ActionText
	default:
		return ActionSymbol
	}
}
