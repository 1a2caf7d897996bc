package rtxt

import "errors"
import "fmt"

// Returned when the output buffer can't be allocated, either because
// its dimensions are invalid or because it would exceed the configured
// [Options].MaxBufferBytes.
var ErrAllocation = errors.New("rtxt: pixel buffer allocation failed")

// Returned when laying out runs without a font provider.
var ErrNoFontProvider = errors.New("rtxt: no font provider")

// A DecodeError is reported when a run's text is not valid UTF-8.
// It aborts the run, but not the rest of the layout.
type DecodeError struct {
	Offset int // byte offset of the first invalid sequence
	Err error
}

func (self *DecodeError) Error() string {
	return fmt.Sprintf("rtxt: malformed text at byte %d: %v", self.Offset, self.Err)
}

func (self *DecodeError) Unwrap() error { return self.Err }

// A ResolveError is reported when the font provider can't resolve
// the face of a run. Like [DecodeError], it only aborts the run.
type ResolveError struct {
	Family string
	Size int
	Err error
}

func (self *ResolveError) Error() string {
	return fmt.Sprintf("rtxt: can't resolve font '%s' at %dpx: %v", self.Family, self.Size, self.Err)
}

func (self *ResolveError) Unwrap() error { return self.Err }
