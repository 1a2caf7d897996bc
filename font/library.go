package font

import "io/fs"
import "sync"
import "errors"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// A collection of fonts accessible by full name or by family name.
//
// Libraries are safe for concurrent use. Parsed sfnt fonts are read-only
// once created, so the same library can back the contexts of many
// concurrent layout operations.
type Library struct {
	mutex sync.RWMutex
	fonts map[string]*sfnt.Font    // by full name
	families map[string]*sfnt.Font // by family name, regular subfamily preferred
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		fonts: make(map[string]*sfnt.Font),
		families: make(map[string]*sfnt.Font),
	}
}

// An error that can be returned by [Library.AddFont](), [Library.ParseFromPath]()
// and [Library.ParseFromBytes]() when a font is not added due to its name already
// being present in the [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

// Special error that can be used with [Library.EachFont]() to
// break early. When used, the function will return early but still
// return a nil error.
var ErrBreakEach = errors.New("EachFont() early break")

// Returns the current number of fonts in the library.
func (self *Library) Size() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.fonts)
}

// Finds out whether a font with the given full name exists in the library.
func (self *Library) HasFont(name string) bool {
	self.mutex.RLock()
	_, found := self.fonts[name]
	self.mutex.RUnlock()
	return found
}

// Returns the font with the given full name, or nil if not found.
func (self *Library) GetFont(name string) *sfnt.Font {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.fonts[name]
}

// Returns the font for the given name. Full names are tried first,
// family names afterwards (e.g. "Go" finds "Go Regular"). Returns nil
// if nothing matches.
func (self *Library) Lookup(name string) *sfnt.Font {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	font, found := self.fonts[name]
	if found { return font }
	return self.families[name]
}

// Adds the given font into the library and returns its name and any
// possible error. If another font with the same name was already present
// in the library, [ErrAlreadyPresent] will be returned.
func (self *Library) AddFont(font *sfnt.Font) (string, error) {
	name, err := GetName(font)
	if err != nil { return "", err }
	return name, self.addNewFont(font, name)
}

// Returns false if the font can't be removed due to not being found.
func (self *Library) RemoveFont(name string) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	font, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	for family, familyFont := range self.families {
		if familyFont == font { delete(self.families, family) }
	}
	return true
}

// Returns the name of the added font and any possible error.
// If a font with the same name has already been parsed or added,
// [ErrAlreadyPresent] will be returned.
func (self *Library) ParseFromPath(path string) (string, error) {
	font, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath]() for raw font bytes.
// The bytes must not be modified while the font is in use.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	font, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	font, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// Calls the given function for each font in the library, passing their
// names and content as arguments, in pseudo-random order.
//
// If the given function returns a non-nil error, the method will immediately
// stop and return that error, with the only exception of [ErrBreakEach].
//
// The library is read-locked during the iteration, so the given function
// must not add or remove fonts.
func (self *Library) EachFont(fontFunc func(string, *sfnt.Font) error) error {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	for name, font := range self.fonts {
		err := fontFunc(name, font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

// Walks the given directory non-recursively and adds all the .ttf and .otf
// fonts in it. Returns the number of fonts added, the number of fonts skipped
// (when a font with the same name already exists in the Library) and any error
// that might happen during the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}

			if !hasValidFontExtension(path) { return nil }
			_, err = self.ParseFromPath(path)
			if err == ErrAlreadyPresent {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// Creates a new [Context] backed by this library. The fallback font
// may be nil, in which case there's no fallback face during layout.
func (self *Library) NewContext(fallback *sfnt.Font) *Context {
	return NewContext(self, fallback)
}

func (self *Library) addNewFont(font *sfnt.Font, name string) error {
	family, err := GetFamily(font)
	if err != nil && err != ErrNotFound { return err }
	subfamily, _ := GetSubfamily(font)

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.fonts[name]; found { return ErrAlreadyPresent }
	self.fonts[name] = font
	if family != "" {
		_, hasFamily := self.families[family]
		if !hasFamily || subfamily == "Regular" {
			self.families[family] = font
		}
	}
	return nil
}
