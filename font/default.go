package font

import "sync"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

var defaultFallback struct {
	once sync.Once
	font *sfnt.Font
	err error
}

// Returns the Go Regular font, parsed once and shared. It's the
// fallback font used by [NewDefaultContext]().
func DefaultFallback() (*sfnt.Font, error) {
	defaultFallback.once.Do(func() {
		defaultFallback.font, defaultFallback.err = sfnt.Parse(goregular.TTF)
	})
	return defaultFallback.font, defaultFallback.err
}

// Creates a new [Context] for the given library (which may be nil)
// using Go Regular as the fallback font.
func NewDefaultContext(library *Library) (*Context, error) {
	fallback, err := DefaultFallback()
	if err != nil { return nil, err }
	return NewContext(library, fallback), nil
}
