package rtxt

import "encoding/binary"
import "strings"
import "unicode"

import "golang.org/x/text/encoding"
import "golang.org/x/text/encoding/unicode/utf32"
import "golang.org/x/text/transform"

// Splits the runs into logical lines at every newline. Runs containing
// newlines are broken into fragments that keep their style, and the
// fragments between two newlines make up one group. With k newlines in
// total, the result has exactly k + 1 groups (some of them possibly
// with empty texts). An empty run list returns no groups.
func SplitLogicalLines(runs []StyledRun) [][]StyledRun {
	if len(runs) == 0 { return nil }

	var groups [][]StyledRun
	var group []StyledRun
	for _, run := range runs {
		text := run.Text
		for {
			index := strings.IndexByte(text, '\n')
			if index == -1 { break }
			group = append(group, StyledRun{ Text: text[: index], Style: run.Style })
			groups = append(groups, group)
			group = nil
			text = text[index + 1 :]
		}
		group = append(group, StyledRun{ Text: text, Style: run.Style })
	}
	return append(groups, group)
}

// Validates the text and decodes it as UTF-32 code points. Control
// characters (including '\r' and '\n') are dropped. Invalid UTF-8
// results in a [*DecodeError].
func DecodeRun(text string) ([]rune, error) {
	decoder := transform.Chain(
		encoding.UTF8Validator,
		utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewEncoder(),
	)
	utf32Text, n, err := transform.String(decoder, text)
	if err != nil { return nil, &DecodeError{ Offset: n, Err: err } }

	raw := []byte(utf32Text)
	codePoints := make([]rune, 0, len(raw)/4)
	for i := 0; i + 4 <= len(raw); i += 4 {
		codePoint := rune(binary.BigEndian.Uint32(raw[i : i + 4]))
		if unicode.IsControl(codePoint) { continue }
		codePoints = append(codePoints, codePoint)
	}
	return codePoints, nil
}

// Splits a logical line into words for word wrapping. Each word keeps
// the spaces that follow it, so joining all the words gives back the
// original line.
func splitWords(group []StyledRun) [][]StyledRun {
	var words [][]StyledRun
	var word []StyledRun
	afterSpace := false
	for _, run := range group {
		start := 0
		for i, codePoint := range run.Text {
			isSpace := unicode.IsSpace(codePoint)
			if afterSpace && !isSpace {
				if i > start {
					word = append(word, StyledRun{ Text: run.Text[start : i], Style: run.Style })
				}
				words = append(words, word)
				word, start = nil, i
			}
			afterSpace = isSpace
		}
		word = append(word, StyledRun{ Text: run.Text[start :], Style: run.Style })
	}
	if len(word) > 0 { words = append(words, word) }
	return words
}
