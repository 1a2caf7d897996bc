package font

import "unsafe"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/rtxt/fract"
import "github.com/tinne26/rtxt/sizer"

// A Face is a font at a specific pixel size, as used by the layout.
//
// Faces obtained from a [Context] share the context's sfnt buffer, so
// they have the same concurrency restrictions as the context itself.
type Face interface {
	// Identifies the underlying font data. Two faces with the same ID
	// and Size produce the same glyphs, which allows caching masks.
	ID() uint64

	// The size of the face in pixels.
	Size() int

	// Returns the glyph index for the given code point, or zero
	// if the face can't represent it.
	GlyphIndex(codePoint rune) sfnt.GlyphIndex

	// Returns the horizontal advance of the given glyph.
	GlyphAdvance(index sfnt.GlyphIndex) fract.Unit

	// Returns the kerning between the given pair of glyphs.
	Kern(prev, curr sfnt.GlyphIndex) fract.Unit

	// Returns the ascender and descender in whole pixels, measured
	// upwards from the baseline. The descender is typically negative.
	Metrics() (ascender, descender int)

	// Returns an unhinted outline for the given glyph. The returned
	// segments belong to the caller, in glyph space (y grows downwards).
	LoadOutline(index sfnt.GlyphIndex) (sfnt.Segments, error)
}

var _ Face = (*sfntFace)(nil)

type sfntFace struct {
	font *sfnt.Font
	buffer *sfnt.Buffer // owned by the parent context
	sizer sizer.Sizer
	size int
	ascender int
	descender int
}

func newSfntFace(font *sfnt.Font, buffer *sfnt.Buffer, fontSizer sizer.Sizer, size int) *sfntFace {
	ppem := fract.FromInt(size)
	fontSizer.NotifyChange(font, buffer, ppem)

	// FreeType rounds the scaled ascender up and the descender down,
	// and the layout relies on the same convention
	ascent  := fontSizer.Ascent(font, buffer, ppem)
	descent := fontSizer.Descent(font, buffer, ppem)
	return &sfntFace{
		font: font,
		buffer: buffer,
		sizer: fontSizer,
		size: size,
		ascender: ascent.ToIntCeil(),
		descender: -descent.ToIntCeil(),
	}
}

func (self *sfntFace) ID() uint64 { return uint64(uintptr(unsafe.Pointer(self.font))) }
func (self *sfntFace) Size() int { return self.size }
func (self *sfntFace) Metrics() (int, int) { return self.ascender, self.descender }

func (self *sfntFace) GlyphIndex(codePoint rune) sfnt.GlyphIndex {
	index, err := self.font.GlyphIndex(self.buffer, codePoint)
	if err != nil { return 0 }
	return index
}

func (self *sfntFace) GlyphAdvance(index sfnt.GlyphIndex) fract.Unit {
	return self.sizer.GlyphAdvance(self.font, self.buffer, fract.FromInt(self.size), index)
}

func (self *sfntFace) Kern(prev, curr sfnt.GlyphIndex) fract.Unit {
	return self.sizer.Kern(self.font, self.buffer, fract.FromInt(self.size), prev, curr)
}

func (self *sfntFace) LoadOutline(index sfnt.GlyphIndex) (sfnt.Segments, error) {
	segments, err := self.font.LoadGlyph(self.buffer, index, fract.FromInt(self.size).ToFixed(), nil)
	if err != nil { return nil, err }

	// sfnt reuses the buffer memory for the next glyph
	outline := make(sfnt.Segments, len(segments))
	copy(outline, segments)
	return outline, nil
}
