package rtxt

import "fmt"
import "image"
import "image/color"
import "math"

// An RGBA8888 pixel buffer, row-major with the origin at the top-left
// corner. Colors are not premultiplied by alpha.
type PixelBuffer struct {
	Width int
	Height int
	Pix []uint8 // Width*Height*4 bytes
}

func newPixelBuffer(width, height, maxBytes int) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrAllocation, width, height)
	}
	if width > 0 && height > math.MaxInt/4/width {
		return nil, fmt.Errorf("%w: size %dx%d overflows", ErrAllocation, width, height)
	}
	bytes := width*height*4
	if bytes > maxBytes {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, limit is %d", ErrAllocation, width, height, bytes, maxBytes)
	}
	return &PixelBuffer{ Width: width, Height: height, Pix: make([]uint8, bytes) }, nil
}

// Returns an [*image.RGBA] sharing the buffer's pixels.
//
// Notice that the buffer colors are not premultiplied, while
// [image.RGBA] expects them to be. Use [PixelBuffer.NRGBA]() when
// exporting images with semi-transparent pixels.
func (self *PixelBuffer) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix: self.Pix,
		Stride: self.Width*4,
		Rect: image.Rect(0, 0, self.Width, self.Height),
	}
}

// Returns an [*image.NRGBA] sharing the buffer's pixels.
func (self *PixelBuffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix: self.Pix,
		Stride: self.Width*4,
		Rect: image.Rect(0, 0, self.Width, self.Height),
	}
}

// Returns the color at the given coordinates, or the zero value
// when out of bounds.
func (self *PixelBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= self.Width || y >= self.Height { return color.RGBA{} }
	i := (y*self.Width + x)*4
	return color.RGBA{ self.Pix[i], self.Pix[i + 1], self.Pix[i + 2], self.Pix[i + 3] }
}

func (self *PixelBuffer) set(x, y int, rgba color.RGBA) {
	if x < 0 || y < 0 || x >= self.Width || y >= self.Height { return }
	i := (y*self.Width + x)*4
	self.Pix[i + 0] = rgba.R
	self.Pix[i + 1] = rgba.G
	self.Pix[i + 2] = rgba.B
	self.Pix[i + 3] = rgba.A
}

// Writes the mask with its origin at (x, y). Where coverage is
// non-zero, the pixel becomes the color scaled by the coverage,
// with the coverage as alpha. Other pixels are left untouched.
func (self *PixelBuffer) drawMask(mask *image.Alpha, x, y int, rgba color.RGBA) {
	bounds := mask.Rect
	for my := bounds.Min.Y; my < bounds.Max.Y; my++ {
		row := mask.Pix[(my - bounds.Min.Y)*mask.Stride :]
		for mx := bounds.Min.X; mx < bounds.Max.X; mx++ {
			value := row[mx - bounds.Min.X]
			if value == 0 { continue }
			self.set(x + mx, y + my, color.RGBA{
				R: uint8(uint32(rgba.R)*uint32(value)/255),
				G: uint8(uint32(rgba.G)*uint32(value)/255),
				B: uint8(uint32(rgba.B)*uint32(value)/255),
				A: value,
			})
		}
	}
}

// Draws a one pixel tall opaque line from x1 to x2, both included.
func (self *PixelBuffer) drawHorzLine(x1, x2, y int, rgba color.RGBA) {
	rgba.A = 0xFF
	for x := x1; x <= x2; x++ {
		self.set(x, y, rgba)
	}
}
