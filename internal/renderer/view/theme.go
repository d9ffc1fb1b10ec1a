package view

import "github.com/gdamore/tcell/v2"

// Theme holds the styles a View draws with.
type Theme struct {
	Text      tcell.Style
	Gutter    tcell.Style
	Selection tcell.Style
	Cursor    tcell.Style // Secondary cursors; the terminal shows the primary
	Status    tcell.Style
	Filler    tcell.Style // Rows past the end of the text
}

// DefaultTheme returns the default terminal theme.
func DefaultTheme() Theme {
	return Theme{
		Text:      tcell.StyleDefault,
		Gutter:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		Selection: tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack),
		Cursor:    tcell.StyleDefault.Reverse(true),
		Status:    tcell.StyleDefault.Reverse(true),
		Filler:    tcell.StyleDefault.Foreground(tcell.ColorNavy),
	}
}
