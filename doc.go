// rtxt is a package for rich text layout and rasterization in Golang.
//
// It takes a sequence of styled runs (text with its own font family,
// size, color and bold, italic, underline and strike-through flags) and
// renders them into a single RGBA pixel buffer. Text is wrapped to a
// maximum width, glyphs missing from a run's font are taken from a
// fallback font or replaced by emoji images, and each line takes the
// height of the biggest font it contains.
//
// Common usage only requires a font provider and a call to [Layout]():
//   fonts, err := font.NewDefaultContext(nil)
//   if err != nil { ... }
//   opts := rtxt.DefaultOptions()
//   opts.Fonts = fonts
//   runs := []rtxt.StyledRun{
//       { Text: "Hello ", Style: rtxt.FontStyle{ Size: 20, Color: black } },
//       { Text: "world!", Style: rtxt.FontStyle{ Size: 20, Color: red, Bold: true } },
//   }
//   buffer, err := rtxt.Layout(runs, &rtxt.Size{ Width: 240 }, opts)
//
// For more control, a [Session] exposes the laid out [Document] before
// rendering it.
package rtxt

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rtxt.layout'
func tracer() tracing.Trace {
	return tracing.Select("rtxt.layout")
}
