package main

import "image/color"
import "strings"

import "github.com/muesli/termenv"

import "github.com/tinne26/rtxt"

// Each terminal cell shows two pixels: the upper half block takes the
// top one as foreground and the bottom one as background.
const halfBlock = "▀"

func previewLines(buffer *rtxt.PixelBuffer, background color.RGBA) []string {
	return previewLinesFor(termenv.ColorProfile(), buffer, background)
}

func previewLinesFor(profile termenv.Profile, buffer *rtxt.PixelBuffer, background color.RGBA) []string {
	lines := make([]string, 0, (buffer.Height + 1)/2)
	for y := 0; y < buffer.Height; y += 2 {
		var builder strings.Builder
		for x := 0; x < buffer.Width; x++ {
			top := blend(buffer.At(x, y), background)
			bottom := background
			if y + 1 < buffer.Height { bottom = blend(buffer.At(x, y + 1), background) }
			cell := termenv.String(halfBlock).
				Foreground(profile.FromColor(top)).
				Background(profile.FromColor(bottom))
			builder.WriteString(cell.String())
		}
		lines = append(lines, builder.String())
	}
	return lines
}

// Composites a non-premultiplied pixel over an opaque background.
func blend(pixel, background color.RGBA) color.RGBA {
	alpha := uint32(pixel.A)
	mix := func(over, under uint8) uint8 {
		return uint8((uint32(over)*alpha + uint32(under)*(255 - alpha))/255)
	}
	return color.RGBA{
		R: mix(pixel.R, background.R),
		G: mix(pixel.G, background.G),
		B: mix(pixel.B, background.B),
		A: 255,
	}
}
