package rtxt

import "image"
import "image/color"
import "testing"

import "golang.org/x/image/draw"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "github.com/npillmayer/schuko/tracing/gotestingadapter"

import "github.com/tinne26/rtxt/cache"
import "github.com/tinne26/rtxt/emoji"

func TestRenderGlyphPixels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.layout")
	defer teardown()

	// the glyph covers x in [0, 10) and the whole ascender, y in [0, 8)
	opts := fakeOptions(newFakeProvider(10, "A"))
	run := StyledRun{ Text: "A", Style: FontStyle{ Size: 10, Color: red } }
	buffer, err := Layout([]StyledRun{ run }, nil, opts)
	require.NoError(t, err)
	require.Equal(t, 10, buffer.Width)
	require.Equal(t, 10, buffer.Height)

	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			pixel := buffer.At(x, y)
			assert.True(t, pixel.A >= 250, "(%d, %d) alpha %d", x, y, pixel.A)
			assert.Equal(t, pixel.A, pixel.R)
			assert.Equal(t, uint8(0), pixel.G)
		}
	}
	for x := 0; x < 10; x++ {
		assert.Equal(t, color.RGBA{}, buffer.At(x, 8))
		assert.Equal(t, color.RGBA{}, buffer.At(x, 9))
	}
	assert.Equal(t, color.RGBA{}, buffer.At(-1, 0))
	assert.Equal(t, color.RGBA{}, buffer.At(10, 0))
}

func TestRenderDecorations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.layout")
	defer teardown()

	opts := fakeOptions(newFakeProvider(10, "A"))
	style := FontStyle{ Size: 10, Color: color.RGBA{0, 0, 200, 100}, Underline: true, Strikethrough: true }
	buffer, err := Layout([]StyledRun{ { Text: "A", Style: style } }, &Size{ Width: 12, Height: 12 }, opts)
	require.NoError(t, err)

	// underline two pixels below the baseline, over [0, Width]
	opaqueBlue := color.RGBA{0, 0, 200, 255}
	for x := 0; x <= 10; x++ {
		assert.Equal(t, opaqueBlue, buffer.At(x, 10), "underline at x = %d", x)
	}
	assert.Equal(t, color.RGBA{}, buffer.At(11, 10))

	// strikethrough at the baseline minus a third of the font size
	for x := 0; x <= 10; x++ {
		assert.Equal(t, opaqueBlue, buffer.At(x, 5), "strikethrough at x = %d", x)
	}
	assert.Equal(t, color.RGBA{}, buffer.At(11, 5))
	assert.Equal(t, color.RGBA{}, buffer.At(3, 8))
}

func TestRenderBold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.layout")
	defer teardown()

	opts := fakeOptions(newFakeProvider(10, "A"))
	run := StyledRun{ Text: "A", Style: FontStyle{ Size: 10, Color: black, Bold: true } }
	doc := layoutDoc(t, opts, run)
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, 11, doc.Lines[0].Glyphs[0].Width)
	assert.Equal(t, 11, doc.TextSize.Width)

	buffer, err := Render(doc, nil, opts)
	require.NoError(t, err)
	assert.True(t, buffer.At(10, 3).A >= 250)
}

func TestRenderEmoji(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.layout")
	defer teardown()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i + 2], img.Pix[i + 3] = 255, 255
	}
	opts := fakeOptions(newFakeProvider(10, "A"))
	opts.Emoji = emoji.MapProvider{ '😀': img }
	runs := []StyledRun{ styled("😀", 10) }

	// emoji are skipped by the default compositor
	buffer, err := Layout(runs, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{}, buffer.At(5, 4))

	// square of the line height, bottom on the baseline
	opts.EmojiCompositor = emoji.DrawOver
	buffer, err = Layout(runs, nil, opts)
	require.NoError(t, err)
	require.Equal(t, 10, buffer.Width)
	pixel := buffer.At(5, 4)
	assert.True(t, pixel.B >= 250 && pixel.A >= 250, "got %v", pixel)
	assert.Equal(t, color.RGBA{}, buffer.At(5, 9))

	var calls []image.Point
	opts.EmojiCompositor = func(_ draw.Image, _ image.Image, at image.Point) {
		calls = append(calls, at)
	}
	_, err = Layout([]StyledRun{ styled("A😀", 10) }, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, []image.Point{ image.Pt(10, -2) }, calls)
}

func TestRenderMaskCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.layout")
	defer teardown()

	runs := []StyledRun{
		styled("cached glyphs, ", 16),
		{ Text: "cached glyphs", Style: FontStyle{ Size: 16, Color: red, Italic: true } },
	}
	uncached, err := Layout(runs, nil, defaultFontOptions(t))
	require.NoError(t, err)

	maskCache := cache.NewDefaultCache(1 << 20)
	opts := defaultFontOptions(t)
	opts.MaskCache = maskCache
	for i := 0; i < 2; i++ {
		buffer, err := Layout(runs, nil, opts)
		require.NoError(t, err)
		assert.Equal(t, uncached.Pix, buffer.Pix)
	}
	assert.True(t, maskCache.Len() > 0)
}

func TestRenderOverlapOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.layout")
	defer teardown()

	// negative spacing makes the second glyph overlap the first on x in [6, 10)
	opts := fakeOptions(newFakeProvider(10, "A"))
	opts.GlyphSpacing = -4
	blue := color.RGBA{0, 0, 255, 255}
	runs := []StyledRun{
		{ Text: "A", Style: FontStyle{ Size: 10, Color: red } },
		{ Text: "A", Style: FontStyle{ Size: 10, Color: blue } },
	}
	doc := layoutDoc(t, opts, runs...)
	require.Len(t, doc.Lines, 1)
	require.Equal(t, "0,6", glyphXs(doc.Lines[0]))

	buffer, err := Render(doc, nil, opts)
	require.NoError(t, err)
	require.Equal(t, 16, buffer.Width)
	for x := 6; x < 10; x++ {
		pixel := buffer.At(x, 4)
		assert.True(t, pixel.R >= 250 && pixel.B == 0, "(%d, 4) got %v", x, pixel)
	}
	pixel := buffer.At(12, 4)
	assert.True(t, pixel.B >= 250 && pixel.R == 0, "got %v", pixel)
}

func TestRenderLineStride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.layout")
	defer teardown()

	// line 0: ascender 8, height 10. line 1: ascender 24, height 30,
	// so its baseline is at 24 + 1*30 and its ink covers rows [30, 54)
	opts := fakeOptions(newFakeProvider(10, "A"))
	doc := layoutDoc(t, opts, styled("A\n", 10), styled("A", 30))
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, 10, doc.Lines[0].Height)
	assert.Equal(t, 30, doc.Lines[1].Height)
	assert.Equal(t, 40, doc.TextSize.Height)

	buffer, err := Render(doc, &Size{ Height: 60 }, opts)
	require.NoError(t, err)
	require.Equal(t, 60, buffer.Height)
	for y := 0; y < 60; y++ {
		inked := y < 8 || (y >= 30 && y < 54)
		alpha := buffer.At(5, y).A
		if inked {
			assert.True(t, alpha >= 250, "row %d should be inked, alpha %d", y, alpha)
		} else {
			assert.Equal(t, uint8(0), alpha, "row %d should be empty", y)
		}
	}
}
