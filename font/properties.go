package font

import "errors"
import "sync"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Buffers for the property getters, which may be called from many
// goroutines at once, unlike the faces of a [Context].
var propertyBuffers = sync.Pool{
	New: func() any { return &sfnt.Buffer{} },
}

// Returns the requested name property of the font. The returned
// string might be empty even when the error is nil, and missing
// properties return [ErrNotFound].
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := propertyBuffers.Get().(*sfnt.Buffer)
	defer propertyBuffers.Put(buffer)
	value, err := font.Name(buffer, property)
	if errors.Is(err, sfnt.ErrNotFound) { return "", ErrNotFound }
	return value, err
}

// Returns the family name of the given font (e.g. "Go").
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font, which is usually
// one of Regular, Italic, Bold or Bold Italic.
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font (e.g. "Go Bold"). Libraries
// index fonts by this name.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the code points of the text that the font can't represent,
// in order and with repetitions.
//
// During layout, these are the code points left to the fallback face
// and the emoji provider.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := propertyBuffers.Get().(*sfnt.Buffer)
	defer propertyBuffers.Put(buffer)

	var missing []rune
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
