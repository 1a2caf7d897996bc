package sizer

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font"
import "github.com/npillmayer/schuko/tracing"

import "github.com/tinne26/rtxt/fract"

var _ Sizer = (*DefaultSizer)(nil)

// tracer traces with key 'rtxt.sizer'
func tracer() tracing.Trace {
	return tracing.Select("rtxt.sizer")
}

// The default [Sizer] used by rtxt faces. Metrics are unhinted and
// cached on NotifyChange(), advances and kernings are queried directly
// from sfnt.
type DefaultSizer struct {
	cachedAscent  fract.Unit
	cachedDescent fract.Unit
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Ascent(*Font, *Buffer, fract.Unit) fract.Unit {
	return self.cachedAscent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Descent(*Font, *Buffer, fract.Unit) fract.Unit {
	return self.cachedDescent
}

// Satisfies the [Sizer] interface. Glyph indices are expected to be
// valid for the given font, so errors are only traced and reported
// as a zero advance.
func (self *DefaultSizer) GlyphAdvance(sfont *Font, buffer *Buffer, size fract.Unit, g GlyphIndex) fract.Unit {
	advance, err := sfont.GlyphAdvance(buffer, g, size.ToFixed(), font.HintingNone)
	if err == nil { return fract.FromFixed(advance) }
	tracer().Errorf("font.GlyphAdvance(index = %d) error: %v", g, err)
	return 0
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Kern(sfont *Font, buffer *Buffer, size fract.Unit, g1, g2 GlyphIndex) fract.Unit {
	kern, err := sfont.Kern(buffer, g1, g2, size.ToFixed(), font.HintingNone)
	if err == nil { return fract.FromFixed(kern) }
	if err != ErrNotFound {
		tracer().Debugf("font.Kern failed for glyphs %d and %d: %v", g1, g2, err)
	}
	return 0
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) NotifyChange(sfont *Font, buffer *Buffer, size fract.Unit) {
	if sfont == nil || size == 0 {
		self.cachedAscent  = 0
		self.cachedDescent = 0
		return
	}

	metrics, err := sfont.Metrics(buffer, size.ToFixed(), font.HintingNone)
	if err != nil {
		tracer().Errorf("font.Metrics error: %v", err)
		self.cachedAscent  = 0
		self.cachedDescent = 0
		return
	}
	self.cachedAscent  = fract.FromFixed(metrics.Ascent)
	self.cachedDescent = fract.FromFixed(metrics.Descent)
}
