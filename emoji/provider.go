package emoji

import "errors"
import "fmt"
import "image"
import "image/png"
import "io/fs"
import "path"
import "sync"

// A Provider gives access to emoji images.
type Provider interface {
	// Returns whether the code point must be handled as an emoji.
	IsEmoji(codePoint rune) bool

	// Returns the emoji image for the given code point, ideally close
	// to the given size in pixels. The image doesn't need to be square
	// nor match the size exactly. Returns nil if there's no image.
	Image(codePoint rune, size int) image.Image
}

// A [Provider] backed by an in-memory map. Every code point with an
// entry is an emoji.
type MapProvider map[rune]image.Image

// Satisfies the [Provider] interface.
func (self MapProvider) IsEmoji(codePoint rune) bool {
	_, found := self[codePoint]
	return found
}

// Satisfies the [Provider] interface.
func (self MapProvider) Image(codePoint rune, size int) image.Image {
	return self[codePoint]
}

// A [Provider] that detects emoji code points with [IsEmoji]() and
// loads their images on demand as PNG files named after the lowercase
// hex code point (e.g. "1f600.png") in a directory of a [fs.FS].
//
// Loaded images are kept in memory. FSProvider is safe for concurrent use.
type FSProvider struct {
	filesys fs.FS
	dir string
	mutex sync.Mutex
	images map[rune]image.Image // nil values for missing files
}

// Creates a new [FSProvider] reading from the given directory
// of the filesystem. Use "." for the filesystem root.
func NewFSProvider(filesys fs.FS, dir string) *FSProvider {
	return &FSProvider{
		filesys: filesys,
		dir: dir,
		images: make(map[rune]image.Image, 16),
	}
}

// Satisfies the [Provider] interface.
func (self *FSProvider) IsEmoji(codePoint rune) bool {
	return IsEmoji(codePoint)
}

// Satisfies the [Provider] interface. The size is ignored, images are
// returned at their original size.
func (self *FSProvider) Image(codePoint rune, size int) image.Image {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	img, found := self.images[codePoint]
	if found { return img }

	img, err := self.load(codePoint)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		tracer().Errorf("emoji %U: %v", codePoint, err)
	}
	self.images[codePoint] = img
	return img
}

func (self *FSProvider) load(codePoint rune) (image.Image, error) {
	file, err := self.filesys.Open(path.Join(self.dir, FileName(codePoint)))
	if err != nil { return nil, err }
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", FileName(codePoint), err)
	}
	return img, nil
}

// Returns the file name used by [FSProvider] for the given code point.
func FileName(codePoint rune) string {
	return fmt.Sprintf("%x.png", codePoint)
}
