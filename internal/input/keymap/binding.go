package keymap

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key that triggers this binding.
	// Formats: "a", "C-s", "<C-S-Up>", "Ctrl+Shift+Up"
	Keys string `toml:"keys"`

	// Action is the command to execute.
	// Examples: "cursor.down", "file.save", "history.undo"
	Action string `toml:"action"`

	// Description provides documentation for the binding.
	Description string `toml:"description,omitempty"`

	// Category groups bindings for display purposes.
	Category string `toml:"category,omitempty"`
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}
