package markup

import "errors"
import "fmt"
import "image/color"
import "strconv"
import "strings"

import "github.com/alecthomas/participle/v2/lexer"

import "github.com/tinne26/rtxt"

var ErrUnknownTag = errors.New("unknown markup tag")
var ErrInvalidValue = errors.New("invalid tag value")
var ErrMismatchedTag = errors.New("mismatched closing tag")
var ErrUnclosedTag = errors.New("unclosed tag")

// A TagError is returned for tags that are well formed but can't
// be applied. It wraps one of the Err* values of the package.
type TagError struct {
	Pos lexer.Position
	Tag string
	Err error
}

func (self *TagError) Error() string {
	return fmt.Sprintf("%s: [%s]: %v", self.Pos, self.Tag, self.Err)
}

func (self *TagError) Unwrap() error { return self.Err }

type styleFrame struct {
	tag string
	pos lexer.Position
	style rtxt.FontStyle
}

// Parses the markup into styled runs, starting from the given base
// style. Consecutive text sharing a style ends up in a single run.
func Parse(text string, base rtxt.FontStyle) ([]rtxt.StyledRun, error) {
	doc, err := markupParser.ParseString("", text)
	if err != nil { return nil, fmt.Errorf("markup: %w", err) }

	stack := []styleFrame{ { style: base } }
	var runs []rtxt.StyledRun
	var builder strings.Builder
	flush := func() {
		if builder.Len() == 0 { return }
		runs = append(runs, rtxt.StyledRun{ Text: builder.String(), Style: stack[len(stack) - 1].style })
		builder.Reset()
	}

	for _, node := range doc.Nodes {
		switch {
		case node.Text != nil:
			builder.WriteString(*node.Text)
		case node.Escaped != nil:
			builder.WriteByte('[')
		case node.Open != nil:
			style, err := applyTag(stack[len(stack) - 1].style, node.Open)
			if err != nil { return nil, err }
			flush()
			stack = append(stack, styleFrame{ tag: node.Open.Name, pos: node.Open.Pos, style: style })
		case node.Close != nil:
			top := stack[len(stack) - 1]
			if len(stack) == 1 || top.tag != node.Close.Name {
				return nil, &TagError{ Pos: node.Close.Pos, Tag: "/" + node.Close.Name, Err: ErrMismatchedTag }
			}
			flush()
			stack = stack[: len(stack) - 1]
		}
	}
	if len(stack) > 1 {
		top := stack[len(stack) - 1]
		return nil, &TagError{ Pos: top.pos, Tag: top.tag, Err: ErrUnclosedTag }
	}
	flush()
	tracer().Debugf("parsed %d runs from %d nodes", len(runs), len(doc.Nodes))
	return runs, nil
}

func applyTag(style rtxt.FontStyle, tag *openTag) (rtxt.FontStyle, error) {
	fail := func(err error) (rtxt.FontStyle, error) {
		return style, &TagError{ Pos: tag.Pos, Tag: tag.Name, Err: err }
	}

	value := ""
	if tag.Value != nil { value = strings.TrimSpace(*tag.Value) }
	switch tag.Name {
	case "b", "i", "u", "s":
		if tag.Value != nil { return fail(ErrInvalidValue) }
		switch tag.Name {
		case "b": style.Bold = true
		case "i": style.Italic = true
		case "u": style.Underline = true
		case "s": style.Strikethrough = true
		}
	case "size":
		size, err := strconv.Atoi(value)
		if err != nil || size <= 0 { return fail(ErrInvalidValue) }
		style.Size = size
	case "color":
		rgba, ok := ParseColor(value)
		if !ok { return fail(ErrInvalidValue) }
		style.Color = rgba
	case "font":
		if value == "" { return fail(ErrInvalidValue) }
		style.Family = value
	default:
		return fail(ErrUnknownTag)
	}
	return style, nil
}

// Parses #RGB, #RRGGBB and #RRGGBBAA colors, as used by the
// color tag.
func ParseColor(value string) (color.RGBA, bool) {
	hex, found := strings.CutPrefix(value, "#")
	if !found { return color.RGBA{}, false }
	if len(hex) == 3 {
		hex = string([]byte{ hex[0], hex[0], hex[1], hex[1], hex[2], hex[2] })
	}
	if len(hex) == 6 { hex += "ff" }
	if len(hex) != 8 { return color.RGBA{}, false }

	rgba, err := strconv.ParseUint(hex, 16, 32)
	if err != nil { return color.RGBA{}, false }
	return color.RGBA{ uint8(rgba >> 24), uint8(rgba >> 16), uint8(rgba >> 8), uint8(rgba) }, true
}
