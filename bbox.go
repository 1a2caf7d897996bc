package rtxt

import "github.com/tinne26/rtxt/fract"

// An axis-aligned bounding box in pixels, with y measured upwards.
type BBox struct {
	XMin, YMin int
	XMax, YMax int
}

// Returns XMax - XMin.
func (self BBox) Width() int { return self.XMax - self.XMin }

// Returns YMax - YMin.
func (self BBox) Height() int { return self.YMax - self.YMin }

func (self BBox) translate(dx int) BBox {
	self.XMin += dx
	self.XMax += dx
	return self
}

// Returns the horizontal union of both boxes, keeping the vertical
// extent of the receiver.
func (self BBox) merge(other BBox) BBox {
	self.XMin = min(self.XMin, other.XMin)
	self.XMax = max(self.XMax, other.XMax)
	return self
}

// Used to detect whether a box has been grown at all.
const (
	bboxSentinelMin =  32000
	bboxSentinelMax = -32000
)

// Computes the bounding box of the glyphs and sets their Width.
//
// The vertical extent comes from the ascender and descender of the
// face of the glyph with the biggest font size, not from the glyph
// ink. The horizontal extent is the union of the glyph boxes offset
// by their positions. Empty inputs result in a zero box.
func computeBBox(glyphs []Glyph, spacing int) BBox {
	bbox := BBox{ XMin: bboxSentinelMin, XMax: bboxSentinelMax }
	bbox.YMin, bbox.YMax = verticalExtent(glyphs)
	for i := range glyphs {
		xMin, xMax := glyphBox(&glyphs[i], spacing)
		glyphs[i].Width = xMax - xMin
		bbox.XMin = min(bbox.XMin, xMin + glyphs[i].Position.X)
		bbox.XMax = max(bbox.XMax, xMax + glyphs[i].Position.X)
	}

	if bbox.XMin > bbox.XMax { return BBox{} }
	return bbox
}

// Returns the descender and ascender of the dominant face, which
// is the one of the first glyph with the biggest font size.
func verticalExtent(glyphs []Glyph) (yMin, yMax int) {
	biggest := -1
	for i := range glyphs {
		if glyphs[i].FontSize > biggest {
			biggest = glyphs[i].FontSize
			if glyphs[i].Face != nil {
				yMax, yMin = glyphs[i].Face.Metrics()
			}
		}
	}
	return yMin, yMax
}

// Returns the horizontal extent of the glyph relative to its position.
// Emoji glyphs take a square of their font size. Glyphs with empty
// outlines (e.g. spaces) take their advance plus the spacing.
func glyphBox(glyph *Glyph, spacing int) (xMin, xMax int) {
	if glyph.IsEmoji {
		return 0, glyph.FontSize
	}

	bounds := fract.FromFixedRect(glyph.Outline.Bounds())
	xMin = bounds.Min.X.ToIntFloor()
	xMax = bounds.Max.X.ToIntCeil()
	if xMin == xMax {
		return xMin, xMin + glyph.Advance + spacing
	}
	if glyph.Bold { xMax += 1 }
	return xMin, xMax
}
