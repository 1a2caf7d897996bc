package markup

import "errors"
import "image/color"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "github.com/npillmayer/schuko/tracing/gotestingadapter"

import "github.com/tinne26/rtxt"

var base = rtxt.FontStyle{ Size: 16, Color: color.RGBA{0, 0, 0, 255} }

func TestParsePlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.markup")
	defer teardown()

	runs, err := Parse("just text]\nwith a newline", base)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "just text]\nwith a newline", runs[0].Text)
	assert.Equal(t, base, runs[0].Style)

	runs, err = Parse("", base)
	require.NoError(t, err)
	assert.Empty(t, runs)

	runs, err = Parse("a [[b] c", base)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "a [b] c", runs[0].Text)
}

func TestParseNestedTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.markup")
	defer teardown()

	runs, err := Parse("x[b]bold [i]both[/i][/b][size=30][color=#f00]big[/color][/size][u][s]y[/s][/u][font=Go Mono]z[/font]", base)
	require.NoError(t, err)
	require.Len(t, runs, 6)

	assert.Equal(t, "x", runs[0].Text)
	assert.Equal(t, base, runs[0].Style)

	assert.Equal(t, "bold ", runs[1].Text)
	assert.True(t, runs[1].Style.Bold)
	assert.False(t, runs[1].Style.Italic)

	assert.Equal(t, "both", runs[2].Text)
	assert.True(t, runs[2].Style.Bold && runs[2].Style.Italic)

	assert.Equal(t, "big", runs[3].Text)
	assert.Equal(t, 30, runs[3].Style.Size)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, runs[3].Style.Color)
	assert.False(t, runs[3].Style.Bold)

	assert.Equal(t, "y", runs[4].Text)
	assert.True(t, runs[4].Style.Underline && runs[4].Style.Strikethrough)
	assert.Equal(t, 16, runs[4].Style.Size)

	assert.Equal(t, "z", runs[5].Text)
	assert.Equal(t, "Go Mono", runs[5].Style.Family)
}

func TestParseColors(t *testing.T) {
	tests := []struct {
		in string
		out color.RGBA
		ok bool
	}{
		{"#000", color.RGBA{0, 0, 0, 255}, true},
		{"#0a0B0c", color.RGBA{10, 11, 12, 255}, true},
		{"#11223344", color.RGBA{0x11, 0x22, 0x33, 0x44}, true},
		{"112233", color.RGBA{}, false},
		{"#12345", color.RGBA{}, false},
		{"#ggg", color.RGBA{}, false},
	}

	for i, test := range tests {
		out, ok := ParseColor(test.in)
		if ok != test.ok || out != test.out {
			t.Fatalf("test #%d: in %s expected %v (%v), got %v (%v)", i, test.in, test.out, test.ok, out, ok)
		}
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.markup")
	defer teardown()

	tests := []struct {
		in string
		err error
	}{
		{"[x]a[/x]", ErrUnknownTag},
		{"[size=big]a[/size]", ErrInvalidValue},
		{"[size=-2]a[/size]", ErrInvalidValue},
		{"[color=red]a[/color]", ErrInvalidValue},
		{"[b=1]a[/b]", ErrInvalidValue},
		{"[b]a[/i]", ErrMismatchedTag},
		{"a[/b]", ErrMismatchedTag},
		{"[b][i]a[/b][/i]", ErrMismatchedTag},
		{"[b]a", ErrUnclosedTag},
	}

	for _, test := range tests {
		_, err := Parse(test.in, base)
		assert.True(t, errors.Is(err, test.err), "%s: got %v", test.in, err)
		var tagErr *TagError
		assert.True(t, errors.As(err, &tagErr), "%s", test.in)
	}

	_, err := Parse("[b", base)
	assert.Error(t, err)
	_, err = Parse("[ b]", base)
	assert.Error(t, err)
}

func TestParseLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.markup")
	defer teardown()

	runs, err := Parse("[size=20]Hi[/size]\n[b]there[/b]", base)
	require.NoError(t, err)
	session := rtxt.NewSession(rtxt.DefaultOptions())
	assert.True(t, errors.Is(session.Add(runs), rtxt.ErrNoFontProvider))
	assert.Len(t, rtxt.SplitLogicalLines(runs), 2)
}
