package viewport

// MarginConfig holds scroll margin configuration.
type MarginConfig struct {
	Top    int // Rows to keep above cursor
	Bottom int // Rows to keep below cursor
	Left   int // Columns to keep left of cursor
	Right  int // Columns to keep right of cursor
}

// DefaultMargins returns the default margins.
func DefaultMargins() MarginConfig {
	return UniformMargins(3)
}

// UniformMargins keeps rows above and below the cursor and twice as many
// columns to either side.
func UniformMargins(rows int) MarginConfig {
	rows = max(rows, 0)
	return MarginConfig{
		Top:    rows,
		Bottom: rows,
		Left:   2 * rows,
		Right:  2 * rows,
	}
}

// NoMargins returns zero margins (cursor can go to edge).
func NoMargins() MarginConfig {
	return MarginConfig{}
}

// SetMargins sets the scroll margins.
func (v *Viewport) SetMargins(config MarginConfig) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.margins = config
}

// Margins returns the configured margins.
func (v *Viewport) Margins() MarginConfig {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.margins
}

// EffectiveMargins returns margins adjusted for viewport size.
func (v *Viewport) EffectiveMargins() MarginConfig {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.effectiveMargins()
}

// maxMarginRatio limits margins to 1/3 of viewport dimension to ensure
// there's always usable space in the center.
const maxMarginRatio = 3

func (v *Viewport) effectiveMargins() MarginConfig {
	c := v.margins
	maxVertical := v.height / maxMarginRatio
	maxHorizontal := v.width / maxMarginRatio
	c.Top = min(c.Top, maxVertical)
	c.Bottom = min(c.Bottom, maxVertical)
	c.Left = min(c.Left, maxHorizontal)
	c.Right = min(c.Right, maxHorizontal)
	return c
}
