//go:build ebiten

package rtxt

import "github.com/hajimehoshi/ebiten/v2"

// Creates a new Ebitengine image with the buffer contents.
//
// Only available when building with the 'ebiten' tag.
func (self *PixelBuffer) EbitenImage() *ebiten.Image {
	return ebiten.NewImageFromImage(self.NRGBA())
}
