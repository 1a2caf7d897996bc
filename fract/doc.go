// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, alongside the [Point] and [Rect] helper types.
//
// Glyph outlines, advances and kernings come out of sfnt as 26.6
// fixed point values, while rtxt lays out text in whole pixels.
// This subpackage is where the two worlds meet, and where the
// rounding rules for that transition are defined.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
