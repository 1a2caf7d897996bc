package mask

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/rtxt/fract"

// Rasterizer is the interface for glyph outline rasterization to an
// alpha mask.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (always positive coords between
	// 0 and 0:63 (= 0.984375)).
	//
	// The bounds of the returned mask are relative to the glyph origin,
	// in the same y-down space as the outline.
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)

	// Returns a value that tells apart the masks generated by different
	// rasterizers (or differently configured ones) when sharing a cache.
	Signature() uint64
}

type vectorTracer interface {
	MoveTo(fract.Point)
	LineTo(fract.Point)

	// Quadratic Bézier curve. The first parameter is the control
	// coordinate, and the second one the final target.
	QuadTo(fract.Point, fract.Point)

	// Cubic Bézier curve. The first two parameters are the control
	// coordinates, and the third one is the final target.
	CubeTo(fract.Point, fract.Point, fract.Point)
}

// Rasterizes the given outline with the given rasterizer.
//
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fract.Point) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(fract.FromFixedPoint(segment.Args[0]))
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(fract.FromFixedPoint(segment.Args[0]))
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(
				fract.FromFixedPoint(segment.Args[0]),
				fract.FromFixedPoint(segment.Args[1]),
			)
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(
				fract.FromFixedPoint(segment.Args[0]),
				fract.FromFixedPoint(segment.Args[1]),
				fract.FromFixedPoint(segment.Args[2]),
			)
		default:
			panic("unexpected segment.Op case")
		}
	}
}

// Returns the outline bounds as a [fract.Rect].
func outlineBounds(outline sfnt.Segments) fract.Rect {
	return fract.FromFixedRect(outline.Bounds())
}
