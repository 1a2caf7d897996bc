package rtxt

import "errors"
import "fmt"
import "image/color"
import "strings"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/rtxt/font"
import "github.com/tinne26/rtxt/fract"

// A face with rectangular glyphs of a fixed advance, filling the
// whole ascender. Spaces have empty outlines.
type fakeFace struct {
	id uint64
	size int
	advance int
	kern int
	supported string
}

func (self *fakeFace) ID() uint64 { return self.id }
func (self *fakeFace) Size() int { return self.size }

func (self *fakeFace) GlyphIndex(codePoint rune) sfnt.GlyphIndex {
	if !strings.ContainsRune(self.supported, codePoint) { return 0 }
	return sfnt.GlyphIndex(codePoint)
}

func (self *fakeFace) GlyphAdvance(sfnt.GlyphIndex) fract.Unit {
	return fract.FromInt(self.advance)
}

func (self *fakeFace) Kern(sfnt.GlyphIndex, sfnt.GlyphIndex) fract.Unit {
	return fract.FromInt(self.kern)
}

func (self *fakeFace) Metrics() (int, int) {
	return self.size*8/10, -self.size*2/10
}

func (self *fakeFace) LoadOutline(index sfnt.GlyphIndex) (sfnt.Segments, error) {
	if index == ' ' { return sfnt.Segments{}, nil }
	top, right := fixed.I(-self.size*8/10), fixed.I(self.advance)
	return sfnt.Segments{
		{ Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{{X: 0, Y: top}} },
		{ Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: right, Y: top}} },
		{ Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: right, Y: 0}} },
		{ Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: 0, Y: 0}} },
		{ Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{{X: 0, Y: top}} },
	}, nil
}

// Provides fake faces for any family but "missing". Faces are
// created per size so their IDs stay stable.
type fakeProvider struct {
	advance int
	kern int
	supported string
	fallbackSupported string // no fallback when empty
	faces map[int]*fakeFace
	fallbacks map[int]*fakeFace
}

func newFakeProvider(advance int, supported string) *fakeProvider {
	return &fakeProvider{
		advance: advance,
		supported: supported,
		faces: make(map[int]*fakeFace),
		fallbacks: make(map[int]*fakeFace),
	}
}

var errMissingFamily = errors.New("missing family")

func (self *fakeProvider) Resolve(family string, size int) (font.Face, error) {
	if family == "missing" { return nil, errMissingFamily }
	face, found := self.faces[size]
	if !found {
		face = &fakeFace{ id: 1, size: size, advance: self.advance, kern: self.kern, supported: self.supported }
		self.faces[size] = face
	}
	return face, nil
}

func (self *fakeProvider) Fallback(size int) font.Face {
	if self.fallbackSupported == "" { return nil }
	face, found := self.fallbacks[size]
	if !found {
		face = &fakeFace{ id: 2, size: size, advance: self.advance, kern: self.kern, supported: self.fallbackSupported }
		self.fallbacks[size] = face
	}
	return face
}

type recorder struct {
	dropped []rune
	aborted []error
}

func (self *recorder) GlyphDropped(codePoint rune, _ FontStyle) {
	self.dropped = append(self.dropped, codePoint)
}

func (self *recorder) RunAborted(_ StyledRun, err error) {
	self.aborted = append(self.aborted, err)
}

// options for exact geometry: no spacing, no italic lean
func fakeOptions(provider *fakeProvider) Options {
	return Options{ Fonts: provider }
}

var black = color.RGBA{0, 0, 0, 255}
var red = color.RGBA{255, 0, 0, 255}

func styled(text string, size int) StyledRun {
	return StyledRun{ Text: text, Style: FontStyle{ Size: size, Color: black } }
}

func lineTexts(doc *Document) []string {
	texts := make([]string, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		var builder strings.Builder
		for _, glyph := range line.Glyphs {
			builder.WriteRune(glyph.CodePoint)
		}
		texts = append(texts, builder.String())
	}
	return texts
}

func glyphXs(line *Line) string {
	xs := make([]string, 0, len(line.Glyphs))
	for _, glyph := range line.Glyphs {
		xs = append(xs, fmt.Sprint(glyph.Position.X))
	}
	return strings.Join(xs, ",")
}
