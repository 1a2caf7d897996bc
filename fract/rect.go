package fract

import "image"

import "golang.org/x/image/math/fixed"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four units.
func UnitsToRect(minX, minY, maxX, maxY Unit) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Creates a rect from the equivalent x/image type.
func FromFixedRect(rect fixed.Rectangle26_6) Rect {
	return Rect{ Min: FromFixedPoint(rect.Min), Max: FromFixedPoint(rect.Max) }
}

// Returns whether the rect has no area.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns the width of the rect.
func (self Rect) Width() Unit { return self.Max.X - self.Min.X }

// Returns the height of the rect.
func (self Rect) Height() Unit { return self.Max.Y - self.Min.Y }

// Returns the smallest integer rectangle containing the rect,
// flooring the minimum and ceiling the maximum coordinates. This
// matches FreeType's "grid-fitted" control box in pixels.
func (self Rect) PixelBounds() image.Rectangle {
	return image.Rect(
		self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(),
		self.Max.X.ToIntCeil() , self.Max.Y.ToIntCeil(),
	)
}

// Returns the result of translating the rect by the given value.
func (self Rect) AddPoint(pt Point) Rect {
	self.Min = self.Min.AddPoint(pt)
	self.Max = self.Max.AddPoint(pt)
	return self
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
