package fract

import "image"
import "strconv"

import "golang.org/x/image/math/fixed"

// A pair of [Unit] coordinates.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a pair of units.
func UnitsToPoint(x, y Unit) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of ints.
func IntsToPoint(x, y int) Point {
	return Point{ X: FromInt(x), Y: FromInt(y) }
}

// Creates a point from the equivalent x/image type.
func FromFixedPoint(point fixed.Point26_6) Point {
	return Point{ X: Unit(point.X), Y: Unit(point.Y) }
}

// Converts back to the equivalent x/image type.
func (self Point) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{ X: fixed.Int26_6(self.X), Y: fixed.Int26_6(self.Y) }
}

// Returns the point coordinates floored to an [image.Point].
func (self Point) ImagePoint() image.Point {
	return image.Pt(self.X.ToIntFloor(), self.Y.ToIntFloor())
}

// Returns the point coordinates as a pair of float32s.
func (self Point) ToFloat32s() (x, y float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}

// Returns the result of adding the two points.
func (self Point) AddPoint(point Point) Point {
	self.X += point.X
	self.Y += point.Y
	return self
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	x := strconv.FormatFloat(self.X.ToFloat64(), 'f', -1, 64)
	y := strconv.FormatFloat(self.Y.ToFloat64(), 'f', -1, 64)
	return "(" + x + ", " + y + ")"
}
