// The sizer subpackage defines the [Sizer] interface used by font
// faces to obtain font metrics, glyph advances and kernings.
package sizer

import . "golang.org/x/image/font/sfnt"
import "github.com/tinne26/rtxt/fract"

// When shaping glyphs, we need some information related to the
// "font metrics". For example, how much we need to advance after
// a glyph or what's the kerning between a specific pair of glyphs.
//
// Sizers are the interface that faces use to obtain that information.
// Custom sizers can be used to disable kerning or tweak advances
// without touching the layout code.
type Sizer interface {
	// Returns the ascent of the given font, at the given size,
	// as an absolute value.
	//
	// The given font and size must be consistent with the
	// latest NotifyChange() call.
	Ascent(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the descent of the given font, at the given size,
	// as an absolute value.
	//
	// The given font and size must be consistent with the
	// latest NotifyChange() call.
	Descent(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the advance of the given glyph for the given font
	// and size.
	GlyphAdvance(*Font, *Buffer, fract.Unit, GlyphIndex) fract.Unit

	// Returns the kerning value between two glyphs of the given font
	// and size. Fonts without kerning information return zero.
	Kern(*Font, *Buffer, fract.Unit, GlyphIndex, GlyphIndex) fract.Unit

	// Must be called to sync the state of the sizer and allow it
	// to do any caching it may want to do in relation to the given
	// active font or size.
	NotifyChange(*Font, *Buffer, fract.Unit)
}
