package font

import "os"
import "io"
import "io/fs"
import "fmt"
import "errors"
import "strings"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// Returned when trying to parse a file without a .ttf or .otf extension.
var ErrInvalidPath = errors.New("not a .ttf or .otf font path")

// Parses the font and returns it along its full name. The bytes must
// not be modified while the font is in use.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	parsed, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	name, err := GetName(parsed)
	return parsed, name, err
}

// Parses the font file at the given path. See [ParseFromBytes]().
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", fmt.Errorf("%w '%s'", ErrInvalidPath, path)
	}
	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	return parseAndClose(file, path)
}

// Same as [ParseFromPath](), but for filesystems like [embed.FS].
//
// [embed.FS]: https://pkg.go.dev/embed#FS
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", fmt.Errorf("%w '%s'", ErrInvalidPath, path)
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseAndClose(file, path)
}

func parseAndClose(file io.ReadCloser, path string) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	closeErr := file.Close()
	if err == nil { err = closeErr }
	if err != nil { return nil, "", err }

	parsed, name, err := ParseFromBytes(fontBytes)
	if err != nil { return nil, "", fmt.Errorf("parsing '%s': %w", path, err) }
	tracer().Debugf("parsed '%s' from %s", name, path)
	return parsed, name, nil
}

func hasValidFontExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf": return true
	default:
		return false
	}
}
