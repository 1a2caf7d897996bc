package mask

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/rtxt/fract"

var _ Rasterizer = (*BoldRasterizer)(nil)

// A rasterizer that emboldens glyphs by widening their masks horizontally
// after rasterization. The widening only extends masks to the right, so
// the glyph origin stays put and the mask grows by the extra width.
//
// The results are a cheap approximation of outline emboldening. For high
// quality results, use the font's bold version directly.
type BoldRasterizer struct {
	DefaultRasterizer
	xwidth fract.Unit
}

// Creates a new bold rasterizer with the given extra width in pixels.
func NewBoldRasterizer(extraWidth float32) *BoldRasterizer {
	rasterizer := &BoldRasterizer{}
	rasterizer.SetExtraWidth(extraWidth)
	return rasterizer
}

// Sets the extra width for the faux-bold. Values outside the [0, 64]
// range will be clamped. Fractional values are allowed, but internally
// they will be quantized to 1/64ths of a pixel.
func (self *BoldRasterizer) SetExtraWidth(extraWidth float32) {
	if extraWidth < 0 { extraWidth = 0 }
	if extraWidth > 64 { extraWidth = 64 }
	self.xwidth = fract.FromFloat64(float64(extraWidth))
	if self.xwidth == 0 && extraWidth > 0 { self.xwidth = 1 }
}

// Gets the extra width (in pixels, possibly fractional).
func (self *BoldRasterizer) GetExtraWidth() float32 {
	return self.xwidth.ToFloat32()
}

// Satisfies the [Rasterizer] interface. The signature has the
// 0x00B0000000000000 bits set and the extra width in 64ths of a
// pixel on the lowest 16 bits.
func (self *BoldRasterizer) Signature() uint64 {
	return 0x00B00000_00000000 | uint64(uint16(self.xwidth))
}

// Satisfies the [Rasterizer] interface.
func (self *BoldRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	bounds := outlineBounds(outline)
	bounds.Max.X += self.xwidth.Ceil()
	mask := self.rasterizeWithBounds(outline, bounds, origin)
	if self.xwidth > 0 {
		width := mask.Rect.Dx()
		for offset := 0; offset < len(mask.Pix); offset += mask.Stride {
			self.widenRow(mask.Pix[offset : offset + width])
		}
	}
	return mask, nil
}

// Each pixel takes the max of the pixels up to the whole extra width
// to its left, and a weighted portion of the next one for the fractional
// part. Traversal goes right to left so reads only see original values.
func (self *BoldRasterizer) widenRow(row []uint8) {
	whole := self.xwidth.ToIntFloor()
	fractPart := uint16(self.xwidth.FractShift())
	for x := len(row) - 1; x > 0; x-- {
		value := row[x]
		for k := 1; k <= whole && k <= x; k++ {
			if row[x - k] > value { value = row[x - k] }
		}
		if fractPart != 0 && x - whole - 1 >= 0 {
			partial := uint8((uint16(row[x - whole - 1])*fractPart + 32) >> 6)
			if partial > value { value = partial }
		}
		row[x] = value
	}
}
