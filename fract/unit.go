package fract

import "math"

import "golang.org/x/image/math/fixed"

// Minimum and maximum constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	One Unit = 64 // fract.One.ToIntFloor() == 1
	MaxInt int = +33554431
	MinInt int = -33554432
)

// Fixed point type to represent fractional values used for font rendering.
//
// 26 bits represent the integer part of the value, while the remaining 6 bits
// represent the decimal part. So, var pixels Unit = 64 would mean 1 pixel,
// and 96 would be 1.5 pixels.
type Unit int32

// Fast conversion from int to [Unit]. If the int value is not
// representable with a [Unit], the result is undefined.
func FromInt(value int) Unit { return Unit(value << 6) }

// Conversion from the equivalent x/image type.
func FromFixed(value fixed.Int26_6) Unit { return Unit(value) }

// Converts a float64 to the closest Unit, rounding half away from zero.
// Doesn't account for NaNs, infinites nor overflows.
func FromFloat64(value float64) Unit {
	return Unit(math.Round(value*64))
}

// Conversion to the equivalent x/image type.
func (self Unit) ToFixed() fixed.Int26_6 { return fixed.Int26_6(self) }

// Returns whether the Unit is a whole number or if it
// has a fractional part.
func (self Unit) IsWhole() bool {
	return self & 0x3F == 0
}

// Returns the fractional part of the Unit as a value in [0, 63],
// also for negative values.
func (self Unit) FractShift() Unit {
	return self & 0x3F
}

func (self Unit) ToFloat64() float64 { return float64(self)/64.0 }
func (self Unit) ToFloat32() float32 { return float32(self)/64.0 }

// Equivalent to an arithmetic shift, like FreeType's "value >> 6".
// This is the rounding used for advances and kernings.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

// Rounds to the closest integer, with halves rounding up. This is
// the grid fitting FreeType applies to scaled kernings.
func (self Unit) ToIntRound() int {
	return (int(self) + 32) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}
