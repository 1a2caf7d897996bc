package rtxt

import "image"
import "image/color"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/rtxt/font"

// A shaped glyph, positioned within its line.
type Glyph struct {
	CodePoint rune
	Index sfnt.GlyphIndex // never zero unless IsEmoji
	IsEmoji bool

	// The face the glyph was resolved with, which may be the
	// fallback face. Emoji glyphs keep the run's primary face.
	Face font.Face
	FontSize int

	Color color.RGBA
	Bold bool
	Italic bool
	Underline bool
	Strikethrough bool

	// Pen position relative to the line origin, y measured upwards.
	Position image.Point

	// Horizontal advance in whole pixels, without spacing.
	Advance int

	// Width of the glyph box, used as the decoration length.
	// Set when computing bounding boxes.
	Width int

	// Unhinted outline in glyph space (y grows downwards), already
	// sheared for italics. The glyph owns it. Nil for emoji glyphs.
	Outline sfnt.Segments
}
