// The mask subpackage turns glyph outlines into alpha masks.
//
// It defines the [Rasterizer] interface, a [DefaultRasterizer] wrapping
// [golang.org/x/image/vector] and a [BoldRasterizer] that widens the
// resulting masks to emulate emboldened outlines. It also provides the
// [Transform] type used to shear outlines for italics before they are
// rasterized.
package mask
