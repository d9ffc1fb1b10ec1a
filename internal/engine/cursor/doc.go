// Package cursor provides the selection model for multi-cursor editing.
//
// A Selection is a cursor (the caret, where typing occurs) plus an anchor
// (the other end of the selected region) plus a remembered column used by
// vertical motion. When Cursor == Anchor the selection has no region.
// Head and Tail return the lower and upper bound regardless of direction.
//
// A List is an ordered sequence of selections with exactly one marked
// primary. Order carries no meaning except for adding cursors on adjacent
// rows, which works from the first or last element. Selections are not
// sorted or merged; edits shift every bound with Shift so that all cursors
// stay valid when any one of them changes the text.
//
// Basic usage:
//
//	l := cursor.NewList(cursor.At(0))
//	l.Append(cursor.At(10))
//	l.Shift(3, -5)           // text [3, 8) was deleted
//	l.Get(1).Cursor          // 5
//
// Thread Safety:
//
// Selection is a value type and safe for concurrent use. List is not
// thread-safe and should be protected by external synchronization if
// accessed concurrently.
package cursor
