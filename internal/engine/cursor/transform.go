package cursor

// ShiftOffset moves an offset after [at, at+removed) was replaced by
// inserted code points, with delta = inserted - removed. Offsets before
// the edit stay put. Offsets at or after it move by delta but never before
// at, so a bound inside a removed span collapses to the edit point.
func ShiftOffset(offset, at, delta int) int {
	if offset < at {
		return offset
	}
	return max(at, offset+delta)
}

// Shift applies ShiftOffset to both bounds.
func (s Selection) Shift(at, delta int) Selection {
	s.Cursor = ShiftOffset(s.Cursor, at, delta)
	s.Anchor = ShiftOffset(s.Anchor, at, delta)
	return s
}

// EditDelta returns the change in length when [start, end) is replaced by
// inserted code points.
func EditDelta(start, end, inserted int) int {
	return inserted - (end - start)
}
