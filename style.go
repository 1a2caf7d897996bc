package rtxt

import "image/color"

// The style shared by all the text in a [StyledRun].
type FontStyle struct {
	Family string // font name or family name, empty for the fallback font
	Size int // in pixels
	Color color.RGBA
	Bold bool
	Italic bool
	Underline bool
	Strikethrough bool
}

// A run of text sharing one [FontStyle]. The text may contain
// newlines, which always force a line break.
type StyledRun struct {
	Text string
	Style FontStyle
}
