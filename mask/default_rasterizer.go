package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/rtxt/fract"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	normOffset fract.Point // offset to normalize points to the positive
	                       // quadrant starting from the fractional coords
}

// Satisfies the [Rasterizer] interface. The signature for the
// default rasterizer is always zero.
func (self *DefaultRasterizer) Signature() uint64 { return 0 }

// Moves the current position to the given point.
func (self *DefaultRasterizer) MoveTo(point fract.Point) {
	x, y := point.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.MoveTo(x, y)
}

// Creates a straight boundary from the current position to the given point.
func (self *DefaultRasterizer) LineTo(point fract.Point) {
	x, y := point.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.LineTo(x, y)
}

// Creates a quadratic Bézier curve to the given target passing
// through the given control point.
func (self *DefaultRasterizer) QuadTo(control, target fract.Point) {
	cx, cy := control.AddPoint(self.normOffset).ToFloat32s()
	tx, ty := target.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

// Creates a cubic Bézier curve to the given target passing through
// the given control points.
func (self *DefaultRasterizer) CubeTo(controlA, controlB, target fract.Point) {
	cax, cay := controlA.AddPoint(self.normOffset).ToFloat32s()
	cbx, cby := controlB.AddPoint(self.normOffset).ToFloat32s()
	tx , ty  := target.AddPoint(self.normOffset).ToFloat32s()
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	return self.rasterizeWithBounds(outline, outlineBounds(outline), origin), nil
}

func (self *DefaultRasterizer) rasterizeWithBounds(outline sfnt.Segments, bounds fract.Rect, origin fract.Point) *image.Alpha {
	place := placeMask(bounds, origin)
	self.normOffset = place.offset
	self.rasterizer.Reset(place.width, place.height)
	self.rasterizer.DrawOp = draw.Src

	mask := image.NewAlpha(self.rasterizer.Bounds())
	processOutline(self, outline)
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(place.corner)
	return mask
}

// Where a mask goes: vector.Rasterizer only works on the positive
// quadrant, so outlines are shifted by offset while rasterizing and
// the resulting mask is moved back to corner afterwards.
type maskPlacement struct {
	width, height int
	offset fract.Point
	corner image.Point
}

// Only the fractional part of the origin is taken into account.
func placeMask(bounds fract.Rect, origin fract.Point) maskPlacement {
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	offset := fract.UnitsToPoint(origin.X.FractShift() - minX, origin.Y.FractShift() - minY)
	return maskPlacement{
		width: (bounds.Max.X + offset.X).Ceil().ToIntFloor(),
		height: (bounds.Max.Y + offset.Y).Ceil().ToIntFloor(),
		offset: offset,
		corner: image.Pt(minX.ToIntFloor(), minY.ToIntFloor()),
	}
}
