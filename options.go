package rtxt

import "github.com/tinne26/rtxt/cache"
import "github.com/tinne26/rtxt/emoji"
import "github.com/tinne26/rtxt/font"
import "github.com/tinne26/rtxt/mask"

// Default italic lean, as the x-skew of the italic shear.
const DefaultItalicLean = 0.3

// Default extra spacing between consecutive glyphs, in pixels.
const DefaultGlyphSpacing = 2

// Default limit for the output buffer size.
const DefaultMaxBufferBytes = 256 << 20

// A FontProvider resolves the faces used by each run. [font.Context]
// is the standard implementation.
type FontProvider interface {
	Resolve(family string, size int) (font.Face, error)

	// Returns the face to retry glyphs missing from the primary
	// face, or nil if there's no fallback.
	Fallback(size int) font.Face
}

var _ FontProvider = (*font.Context)(nil)

// An Observer gets notified of the text that the layout discards.
// Both events are otherwise silent.
type Observer interface {
	// Called when a code point can't be resolved by any face nor
	// the emoji provider.
	GlyphDropped(codePoint rune, style FontStyle)

	// Called when a run is aborted due to a [*DecodeError] or
	// a [*ResolveError].
	RunAborted(run StyledRun, err error)
}

type nopObserver struct{}
func (nopObserver) GlyphDropped(rune, FontStyle) {}
func (nopObserver) RunAborted(StyledRun, error) {}

// Layout configuration. Nil fields take defaults when used, see each
// field, but numeric fields are always used as they are. [DefaultOptions]()
// returns the usual configuration.
type Options struct {
	// Mandatory for any non-empty layout.
	Fonts FontProvider

	// Emoji support is disabled when nil.
	Emoji emoji.Provider

	// Defaults to [emoji.InterpolatorScaler] (Catmull-Rom).
	Scaler emoji.Scaler

	// Defaults to [emoji.NoCompositor].
	EmojiCompositor emoji.Compositor

	// May be nil.
	Observer Observer

	// Maximum line width in pixels. Zero or negative for no limit.
	MaxWidth int

	// When set, logical lines are wrapped at spaces instead of
	// being split at arbitrary glyphs.
	WrapWords bool

	ItalicLean float64
	GlyphSpacing int

	// Zero or negative values use [DefaultMaxBufferBytes].
	MaxBufferBytes int

	// Optional cache for glyph masks, which can be shared
	// between layouts.
	MaskCache *cache.DefaultCache

	// Creates the rasterizer for regular or bold glyphs. Defaults
	// to [mask.DefaultRasterizer] and [mask.BoldRasterizer] with
	// one pixel of extra width.
	NewRasterizer func(bold bool) mask.Rasterizer
}

// Returns the default options, without a font provider.
func DefaultOptions() Options {
	return Options{
		ItalicLean: DefaultItalicLean,
		GlyphSpacing: DefaultGlyphSpacing,
		MaxBufferBytes: DefaultMaxBufferBytes,
	}
}

func (self Options) withDefaults() Options {
	if self.Scaler == nil { self.Scaler = emoji.InterpolatorScaler{} }
	if self.EmojiCompositor == nil { self.EmojiCompositor = emoji.NoCompositor }
	if self.Observer == nil { self.Observer = nopObserver{} }
	if self.MaxBufferBytes <= 0 { self.MaxBufferBytes = DefaultMaxBufferBytes }
	if self.NewRasterizer == nil { self.NewRasterizer = defaultRasterizer }
	return self
}

func defaultRasterizer(bold bool) mask.Rasterizer {
	if bold { return mask.NewBoldRasterizer(1) }
	return &mask.DefaultRasterizer{}
}

// Buffer dimensions in pixels.
type Size struct {
	Width int
	Height int
}
