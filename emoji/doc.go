// The emoji subpackage provides the emoji side of the layout: code
// point detection, emoji image providers, image scaling and compositing.
//
// Emoji glyphs are not rendered from font outlines. The layout only
// reserves a square of the run's font size for them, and the rasterizer
// later asks a [Provider] for the image, scales it with a [Scaler] and
// hands it to a [Compositor].
package emoji

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rtxt.emoji'
func tracer() tracing.Trace {
	return tracing.Select("rtxt.emoji")
}
