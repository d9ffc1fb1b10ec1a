// Package history provides snapshot-based undo/redo for the text buffer.
//
// # Actions
//
// Edits are grouped into actions, each tagged with an ActionKind. Typing
// a run of characters of one class (whitespace, word or symbol) stays in
// one action, so "abc" undoes in one step while "abc " takes two. Generic
// edits such as paste or duplicate are always their own action. See
// ActionKind.Coalesces for the full relation.
//
// # Snapshots
//
// A Snapshot records the rope after an action plus two selection lists:
// the selections after the action and the selections from just before it
// began. Ropes are persistent, so a snapshot costs one root reference and
// two small lists.
//
// # History Stack
//
//	stack := NewStack(1024)
//	stack.Commit(snapshot)          // clears redo, evicts the oldest past the limit
//	popped, top, ok := stack.Undo() // restore top.Rope with popped.PreSelections
//	next, ok := stack.Redo()        // restore next.Rope with next.Selections
//
// The bottom snapshot is the state the buffer was created with and is
// never undone.
package history
