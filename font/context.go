package font

import "errors"
import "fmt"

import "golang.org/x/image/font/sfnt"
import "github.com/npillmayer/schuko/tracing"

import "github.com/tinne26/rtxt/sizer"

// tracer traces with key 'rtxt.font'
func tracer() tracing.Trace {
	return tracing.Select("rtxt.font")
}

// Returned by [Context.Resolve]() when the family is unknown and no
// fallback font is available either.
var ErrUnknownFamily = errors.New("unknown font family")

// Returned by [Context.Resolve]() for sizes <= 0.
var ErrInvalidSize = errors.New("font size must be strictly positive")

// A Context resolves (family, size) pairs into [Face] values, keeping the
// faces it creates so repeated styles don't recompute metrics. It also
// holds the fallback font used when the primary face of a run lacks a glyph.
//
// Contexts are explicitly passed to layout operations instead of relying on
// any global "current font" state. They are not safe for concurrent use, but
// multiple contexts can share the same [Library].
type Context struct {
	library *Library
	fallback *sfnt.Font
	buffer sfnt.Buffer
	faces map[faceKey]*sfntFace
	newSizer func() sizer.Sizer
}

type faceKey struct {
	font *sfnt.Font
	size int
}

// Creates a new context. Both the library and the fallback font may
// be nil, but a context with neither can't resolve anything.
func NewContext(library *Library, fallback *sfnt.Font) *Context {
	return &Context{
		library: library,
		fallback: fallback,
		faces: make(map[faceKey]*sfntFace, 8),
		newSizer: func() sizer.Sizer { return &sizer.DefaultSizer{} },
	}
}

// Sets the function used to create the [sizer.Sizer] of each new face.
// Faces created before the call are discarded.
func (self *Context) SetSizerFunc(newSizer func() sizer.Sizer) {
	if newSizer == nil { panic("nil sizer func") }
	self.newSizer = newSizer
	self.faces = make(map[faceKey]*sfntFace, 8)
}

// Returns the context's fallback font, which may be nil.
func (self *Context) FallbackFont() *sfnt.Font { return self.fallback }

// Resolves the face for the given family and pixel size. The family can
// be a full font name or a family name, see [Library.Lookup](). An empty
// or unknown family resolves to the fallback font when there's one.
func (self *Context) Resolve(family string, size int) (Face, error) {
	if size <= 0 { return nil, ErrInvalidSize }

	var font *sfnt.Font
	if family != "" && self.library != nil {
		font = self.library.Lookup(family)
	}
	if font == nil {
		if self.fallback == nil {
			return nil, fmt.Errorf("%w '%s'", ErrUnknownFamily, family)
		}
		if family != "" {
			tracer().Debugf("family '%s' not found, using fallback font", family)
		}
		font = self.fallback
	}
	return self.face(font, size), nil
}

// Returns the fallback face at the given size, or nil if the context
// has no fallback font.
func (self *Context) Fallback(size int) Face {
	if self.fallback == nil || size <= 0 { return nil }
	return self.face(self.fallback, size)
}

func (self *Context) face(font *sfnt.Font, size int) *sfntFace {
	key := faceKey{ font: font, size: size }
	face, found := self.faces[key]
	if found { return face }
	face = newSfntFace(font, &self.buffer, self.newSizer(), size)
	self.faces[key] = face
	tracer().Debugf("new face at %dpx", size)
	return face
}
