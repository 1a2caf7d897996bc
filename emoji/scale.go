package emoji

import "image"

import xdraw "golang.org/x/image/draw"

// A Scaler resizes emoji images to square target sizes.
type Scaler interface {
	Scale(img image.Image, size int) image.Image
}

// A [Scaler] using an [xdraw.Interpolator]. The zero value
// uses [xdraw.CatmullRom].
type InterpolatorScaler struct {
	Interpolator xdraw.Interpolator
}

// Satisfies the [Scaler] interface. The result has bounds
// (0, 0, size, size), or is nil for nil images or sizes <= 0.
func (self InterpolatorScaler) Scale(img image.Image, size int) image.Image {
	if img == nil || size <= 0 { return nil }
	interpolator := self.Interpolator
	if interpolator == nil { interpolator = xdraw.CatmullRom }
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	interpolator.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// A Compositor draws a scaled emoji image with its top-left corner
// at the given point of the target image.
type Compositor func(target xdraw.Image, emoji image.Image, at image.Point)

// A [Compositor] that draws nothing. Emoji glyphs still take their
// space in the layout.
func NoCompositor(xdraw.Image, image.Image, image.Point) {}

// A [Compositor] that draws the emoji over the target with the
// Porter-Duff "over" operator.
func DrawOver(target xdraw.Image, emoji image.Image, at image.Point) {
	if emoji == nil { return }
	bounds := emoji.Bounds()
	rect := image.Rectangle{ Min: at, Max: at.Add(bounds.Size()) }
	xdraw.Draw(target, rect, emoji, bounds.Min, xdraw.Over)
}
