package rtxt

import "image"

// A Line is a sequence of glyphs in visual left-to-right order.
type Line struct {
	Glyphs []Glyph
	BBox BBox

	// Always BBox.Width().
	Width int

	// The biggest font size among the glyphs. Set once, when
	// the line is finalized.
	Height int

	// Insertion cursor for the next glyphs.
	Pen image.Point
}

func (self *Line) isEmpty() bool { return len(self.Glyphs) == 0 }

func (self *Line) setBBox(bbox BBox) {
	self.BBox  = bbox
	self.Width = bbox.Width()
}

// Appends glyphs already positioned within the line. The box grows
// horizontally on both sides, but vertically only upwards.
func (self *Line) extend(glyphs []Glyph, bbox BBox) {
	if self.isEmpty() {
		self.Glyphs = append(self.Glyphs, glyphs...)
		self.setBBox(bbox)
		return
	}

	self.Glyphs = append(self.Glyphs, glyphs...)
	merged := self.BBox.merge(bbox)
	merged.YMax = max(merged.YMax, bbox.YMax)
	self.setBBox(merged)
}

func (self *Line) finalize() {
	height := 0
	for i := range self.Glyphs {
		height = max(height, self.Glyphs[i].FontSize)
	}
	self.Height = height
}
