package sizer

import . "golang.org/x/image/font/sfnt"
import "github.com/tinne26/rtxt/fract"

var _ Sizer = (*NoKernSizer)(nil)

// Like [DefaultSizer], but without kerning. Mostly useful to compare
// layouts or for fonts with broken kerning tables.
type NoKernSizer struct {
	DefaultSizer
}

// Satisfies the [Sizer] interface. Always returns zero.
func (self *NoKernSizer) Kern(*Font, *Buffer, fract.Unit, GlyphIndex, GlyphIndex) fract.Unit {
	return 0
}
