package rtxt

import "errors"
import "testing"

import "golang.org/x/text/encoding"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "github.com/npillmayer/schuko/tracing/gotestingadapter"

func runTexts(group []StyledRun) []string {
	texts := make([]string, len(group))
	for i, run := range group { texts[i] = run.Text }
	return texts
}

func TestSplitLogicalLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.layout")
	defer teardown()

	assert.Nil(t, SplitLogicalLines(nil))

	bold := FontStyle{ Size: 12, Bold: true }
	runs := []StyledRun{
		styled("one\ntwo", 10),
		{ Text: "three\n", Style: bold },
		styled("\nfour", 10),
	}
	groups := SplitLogicalLines(runs)
	require.Len(t, groups, 4)
	assert.Equal(t, []string{"one"}, runTexts(groups[0]))
	assert.Equal(t, []string{"two", "three"}, runTexts(groups[1]))
	assert.Equal(t, []string{"", ""}, runTexts(groups[2]))
	assert.Equal(t, []string{"four"}, runTexts(groups[3]))
	assert.Equal(t, bold, groups[1][1].Style)
	assert.Equal(t, bold, groups[2][0].Style)

	groups = SplitLogicalLines([]StyledRun{ styled("plain", 10) })
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"plain"}, runTexts(groups[0]))

	groups = SplitLogicalLines([]StyledRun{ styled("\n\n", 10) })
	assert.Len(t, groups, 3)
}

func TestDecodeRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.layout")
	defer teardown()

	codePoints, err := DecodeRun("a\tb\r\x00ñ😀")
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'b', 'ñ', '😀'}, codePoints)

	codePoints, err = DecodeRun("")
	require.NoError(t, err)
	assert.Empty(t, codePoints)

	_, err = DecodeRun("ok\xffnot ok")
	require.Error(t, err)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.True(t, errors.Is(err, encoding.ErrInvalidUTF8))
}

func TestSplitWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rtxt.layout")
	defer teardown()

	words := splitWords([]StyledRun{ styled("hello  big", 10), styled(" world", 12) })
	require.Len(t, words, 3)
	assert.Equal(t, []string{"hello  "}, runTexts(words[0]))
	assert.Equal(t, []string{"big", " "}, runTexts(words[1]))
	assert.Equal(t, []string{"world"}, runTexts(words[2]))
	assert.Equal(t, 12, words[2][0].Style.Size)

	words = splitWords([]StyledRun{ styled("", 10) })
	require.Len(t, words, 1)
	assert.Equal(t, []string{""}, runTexts(words[0]))
}
