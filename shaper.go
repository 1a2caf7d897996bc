package rtxt

import "image"
import "math"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/rtxt/emoji"
import "github.com/tinne26/rtxt/font"
import "github.com/tinne26/rtxt/mask"

// A Shaper turns styled runs into positioned glyphs. Shapers are
// not safe for concurrent use.
type Shaper struct {
	fonts FontProvider
	emoji emoji.Provider
	observer Observer
	spacing int
	lean float64
	shear mask.Transform
	italicAdvances map[faceKey]int
}

type faceKey struct {
	id uint64
	size int
}

func keyOf(face font.Face) faceKey {
	return faceKey{ id: face.ID(), size: face.Size() }
}

// Creates a new shaper. Options.Fonts must be set.
func NewShaper(opts Options) *Shaper {
	if opts.Fonts == nil { panic("nil font provider") }
	opts = opts.withDefaults()
	return &Shaper{
		fonts: opts.Fonts,
		emoji: opts.Emoji,
		observer: opts.Observer,
		spacing: opts.GlyphSpacing,
		lean: opts.ItalicLean,
		shear: mask.NewShear(opts.ItalicLean),
		italicAdvances: make(map[faceKey]int, 4),
	}
}

// Shapes the run starting at the given pen position, which is advanced
// past the run. Positions use whole pixels.
//
// Each code point is resolved with the run's face, then with the fallback
// face, and finally as an emoji. Code points that can't be resolved are
// dropped. Kerning only applies between consecutive glyphs of the same
// face. Malformed text or unresolvable fonts abort the whole run, leaving
// the pen unchanged.
func (self *Shaper) Shape(run StyledRun, pen *image.Point) ([]Glyph, error) {
	style := run.Style
	codePoints, err := DecodeRun(run.Text)
	if err != nil { return nil, err }
	if len(codePoints) == 0 { return nil, nil }
	face, err := self.fonts.Resolve(style.Family, style.Size)
	if err != nil {
		return nil, &ResolveError{ Family: style.Family, Size: style.Size, Err: err }
	}

	glyphs := make([]Glyph, 0, len(codePoints))
	var prevIndex sfnt.GlyphIndex
	var prevFace font.Face
	for _, codePoint := range codePoints {
		currFace, index := self.resolveGlyph(face, codePoint)
		glyph := Glyph{
			CodePoint: codePoint,
			Index: index,
			Face: currFace,
			FontSize: style.Size,
			Color: style.Color,
			Bold: style.Bold,
			Italic: style.Italic,
			Underline: style.Underline,
			Strikethrough: style.Strikethrough,
		}

		if index == 0 {
			if self.emoji == nil || !self.emoji.IsEmoji(codePoint) {
				self.observer.GlyphDropped(codePoint, style)
				continue
			}
			glyph.IsEmoji = true
			glyph.Position = *pen
			glyph.Advance = style.Size
			pen.X += style.Size
			glyphs = append(glyphs, glyph)
			continue
		}

		if prevIndex != 0 && keyOf(prevFace) == keyOf(currFace) {
			pen.X += currFace.Kern(prevIndex, index).ToIntRound()
		}
		glyph.Position = *pen

		outline, err := currFace.LoadOutline(index)
		if err != nil {
			tracer().Errorf("loading outline for %U: %v", codePoint, err)
			self.observer.GlyphDropped(codePoint, style)
			continue
		}
		if style.Italic { self.shear.Apply(outline) }
		glyph.Outline = outline
		glyph.Advance = currFace.GlyphAdvance(index).ToIntFloor()

		pen.X += glyph.Advance + self.spacing
		if style.Italic { pen.X += self.italicAdvance(face) }
		prevIndex, prevFace = index, currFace
		glyphs = append(glyphs, glyph)
	}
	return glyphs, nil
}

// Returns the outline transform applied to italic glyphs.
func (self *Shaper) ItalicTransform() mask.Transform { return self.shear }

func (self *Shaper) resolveGlyph(face font.Face, codePoint rune) (font.Face, sfnt.GlyphIndex) {
	index := face.GlyphIndex(codePoint)
	if index != 0 { return face, index }
	fallback := self.fonts.Fallback(face.Size())
	if fallback == nil || keyOf(fallback) == keyOf(face) { return face, 0 }
	index = fallback.GlyphIndex(codePoint)
	if index == 0 { return face, 0 }
	return fallback, index
}

// Italic glyphs take an extra advance proportional to the face
// height, computed once per face.
func (self *Shaper) italicAdvance(face font.Face) int {
	key := keyOf(face)
	advance, found := self.italicAdvances[key]
	if found { return advance }

	ascender, descender := face.Metrics()
	skew := int(float64(ascender - descender)*math.Tan(self.lean*0.15*math.Pi))
	advance = skew/3
	self.italicAdvances[key] = advance
	return advance
}
