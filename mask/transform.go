package mask

import "math"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

// A 2x2 linear transform applied to outline control points, with
// x' = XX*x + XY*y and y' = YX*x + YY*y. Coordinates are in the y-down
// space used by [sfnt.Segments].
type Transform struct {
	XX, XY float64
	YX, YY float64
}

// Returns the identity transform.
func Identity() Transform { return Transform{ XX: 1, YY: 1 } }

// Returns a horizontal shear that leans glyphs to the right by the
// given factor: a point one pixel above the baseline moves lean pixels
// to the right. Since sfnt's y grows downwards, that's x' = x - lean*y.
func NewShear(lean float64) Transform {
	return Transform{ XX: 1, XY: -lean, YY: 1 }
}

// Returns whether the transform leaves points unchanged.
func (self Transform) IsIdentity() bool {
	return self == Identity()
}

// Applies the transform in place to every control point of the outline.
func (self Transform) Apply(outline sfnt.Segments) {
	if self.IsIdentity() { return }
	for i := range outline {
		args := &outline[i].Args
		for j := 0; j < segmentArgCount(outline[i].Op); j++ {
			args[j] = self.apply(args[j])
		}
	}
}

func (self Transform) apply(point fixed.Point26_6) fixed.Point26_6 {
	x, y := float64(point.X), float64(point.Y)
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(self.XX*x + self.XY*y)),
		Y: fixed.Int26_6(math.Round(self.YX*x + self.YY*y)),
	}
}

func segmentArgCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo: return 1
	case sfnt.SegmentOpQuadTo: return 2
	case sfnt.SegmentOpCubeTo: return 3
	default:
		panic("unexpected segment.Op case")
	}
}
