// Package markup parses a small BBCode-like markup into styled runs
// for rtxt layouts.
//
// Supported tags:
//   - [b], [i], [u] and [s] for bold, italic, underline and strikethrough.
//   - [size=N] for the font size in pixels.
//   - [color=#RGB], [color=#RRGGBB] or [color=#RRGGBBAA].
//   - [font=Name] for a font name or family name.
//
// Tags must be closed in reverse order (e.g. "[b][i]x[/i][/b]"), and
// "[[" writes a literal '['. Everything else is text, newlines included.
package markup

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rtxt.markup'
func tracer() tracing.Trace {
	return tracing.Select("rtxt.markup")
}
