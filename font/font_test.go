package font

import "os"
import "errors"
import "testing"
import "testing/fstest"
import "path/filepath"

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/sfnt"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "github.com/npillmayer/schuko/tracing/gotestingadapter"

import "github.com/tinne26/rtxt/sizer"

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.font")
	defer teardown()

	_, name, err := ParseFromBytes(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Go Regular", name)

	filesys := fstest.MapFS{
		"fonts/bold.ttf": &fstest.MapFile{ Data: gobold.TTF },
		"fonts/broken.otf": &fstest.MapFile{ Data: []byte("not a font") },
		"fonts/readme.txt": &fstest.MapFile{ Data: []byte("hi") },
	}
	parsed, name, err := ParseFromFS(filesys, "fonts/bold.ttf")
	require.NoError(t, err)
	assert.Equal(t, "Go Bold", name)
	family, err := GetFamily(parsed)
	require.NoError(t, err)
	assert.Equal(t, "Go", family)
	subfamily, err := GetSubfamily(parsed)
	require.NoError(t, err)
	assert.Equal(t, "Bold", subfamily)

	_, _, err = ParseFromFS(filesys, "fonts/readme.txt")
	assert.True(t, errors.Is(err, ErrInvalidPath))
	_, _, err = ParseFromFS(filesys, "fonts/broken.otf")
	assert.Error(t, err)
	_, _, err = ParseFromPath("missing/font.TTF")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	missing, err := GetMissingRunes(parsed, "ab一c丁")
	require.NoError(t, err)
	assert.Equal(t, []rune{'一', '丁'}, missing)
}

func TestLibrary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.font")
	defer teardown()

	library := NewLibrary()
	name, err := library.ParseFromBytes(gobold.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Go Bold", name)
	_, err = library.ParseFromBytes(goregular.TTF)
	require.NoError(t, err)
	_, err = library.ParseFromBytes(goregular.TTF)
	assert.Equal(t, ErrAlreadyPresent, err)
	assert.Equal(t, 2, library.Size())

	// families prefer their regular subfamily
	regular := library.GetFont("Go Regular")
	require.NotNil(t, regular)
	assert.True(t, library.HasFont("Go Bold"))
	assert.Same(t, regular, library.Lookup("Go"))
	assert.Same(t, library.GetFont("Go Bold"), library.Lookup("Go Bold"))
	assert.Nil(t, library.Lookup("Comic"))

	count := 0
	err = library.EachFont(func(string, *sfnt.Font) error {
		count += 1
		return ErrBreakEach
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.True(t, library.RemoveFont("Go Regular"))
	assert.False(t, library.RemoveFont("Go Regular"))
	assert.Nil(t, library.Lookup("Go"))
	assert.Equal(t, 1, library.Size())
}

func TestLibraryParseAllFromPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.font")
	defer teardown()

	dir := t.TempDir()
	files := map[string][]byte{
		"regular.ttf": goregular.TTF,
		"mono.ttf": gomono.TTF,
		"notes.txt": []byte("skip me"),
	}
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "bold.ttf"), gobold.TTF, 0644))

	library := NewLibrary()
	_, err := library.ParseFromBytes(goregular.TTF)
	require.NoError(t, err)
	added, skipped, err := library.ParseAllFromPath(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, skipped)
	assert.False(t, library.HasFont("Go Bold"))
}

func TestContextResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.font")
	defer teardown()

	library := NewLibrary()
	_, err := library.ParseFromBytes(gobold.TTF)
	require.NoError(t, err)

	// without fallback, unknown families fail
	context := library.NewContext(nil)
	assert.Nil(t, context.Fallback(12))
	_, err = context.Resolve("Unknown", 12)
	assert.True(t, errors.Is(err, ErrUnknownFamily))
	_, err = context.Resolve("", 12)
	assert.True(t, errors.Is(err, ErrUnknownFamily))
	face, err := context.Resolve("Go", 12)
	require.NoError(t, err)
	assert.Equal(t, 12, face.Size())

	context, err = NewDefaultContext(library)
	require.NoError(t, err)
	fallback, err := DefaultFallback()
	require.NoError(t, err)
	assert.Same(t, fallback, context.FallbackFont())

	_, err = context.Resolve("Go", 0)
	assert.True(t, errors.Is(err, ErrInvalidSize))

	bold, err := context.Resolve("Go Bold", 16)
	require.NoError(t, err)
	unknown, err := context.Resolve("Unknown", 16)
	require.NoError(t, err)
	assert.NotEqual(t, bold.ID(), unknown.ID())
	assert.Equal(t, context.Fallback(16).ID(), unknown.ID())

	// faces are cached per font and size
	again, err := context.Resolve("Go Bold", 16)
	require.NoError(t, err)
	assert.Same(t, bold, again)
	other, err := context.Resolve("Go Bold", 17)
	require.NoError(t, err)
	assert.NotSame(t, bold, other)
	assert.Equal(t, bold.ID(), other.ID())
}

func TestFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.font")
	defer teardown()

	context, err := NewDefaultContext(nil)
	require.NoError(t, err)
	face, err := context.Resolve("", 20)
	require.NoError(t, err)

	ascender, descender := face.Metrics()
	assert.True(t, ascender > 10 && ascender <= 20, "ascender %d", ascender)
	assert.True(t, descender < 0 && descender > -10, "descender %d", descender)

	index := face.GlyphIndex('H')
	require.NotZero(t, index)
	assert.Zero(t, face.GlyphIndex('一'))
	advance := face.GlyphAdvance(index)
	assert.True(t, advance.ToIntFloor() > 5 && advance.ToIntFloor() < 20)

	outline, err := face.LoadOutline(index)
	require.NoError(t, err)
	require.NotEmpty(t, outline)
	second, err := face.LoadOutline(face.GlyphIndex('i'))
	require.NoError(t, err)
	assert.NotEqual(t, outline.Bounds(), second.Bounds())

	// outlines are owned by the caller
	bounds := outline.Bounds()
	again, err := face.LoadOutline(index)
	require.NoError(t, err)
	assert.Equal(t, bounds, again.Bounds())

	space, err := face.LoadOutline(face.GlyphIndex(' '))
	require.NoError(t, err)
	assert.Empty(t, space)

	// kerning depends on the sizer
	av := [2]sfnt.GlyphIndex{ face.GlyphIndex('A'), face.GlyphIndex('V') }
	context.SetSizerFunc(func() sizer.Sizer { return &sizer.NoKernSizer{} })
	noKern, err := context.Resolve("", 21)
	require.NoError(t, err)
	assert.Zero(t, noKern.Kern(av[0], av[1]))
}
