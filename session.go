package rtxt

import "image"

// The laid out lines, in top to bottom order.
type Document struct {
	Lines []*Line

	// Max line width by the sum of line heights.
	TextSize Size
}

// A Session lays out runs into a [Document]. It owns the document and
// the line being built, and it's not safe for concurrent use. Different
// sessions can work concurrently as long as they don't share a
// [font.Context].
//
// [font.Context]: https://pkg.go.dev/github.com/tinne26/rtxt/font#Context
type Session struct {
	opts Options
	shaper *Shaper
	doc Document
	line *Line // open line
}

// Creates a new session.
func NewSession(opts Options) *Session {
	return &Session{ opts: opts.withDefaults() }
}

// Returns the session's document. It's only modified by further
// calls to [Session.Add]() and [Session.Reset]().
func (self *Session) Document() *Document { return &self.doc }

// Discards the document.
func (self *Session) Reset() {
	self.doc  = Document{}
	self.line = nil
}

// Lays out the given runs after the current document contents,
// always starting on a new line. Runs that can't be shaped are
// skipped and reported to the observer.
func (self *Session) Add(runs []StyledRun) error {
	if len(runs) == 0 { return nil }
	if self.opts.Fonts == nil { return ErrNoFontProvider }
	if self.shaper == nil { self.shaper = NewShaper(self.opts) }

	for _, group := range SplitLogicalLines(runs) {
		self.layoutLogicalLine(group)
	}
	tracer().Infof("document has %d lines, %dx%d", len(self.doc.Lines),
		self.doc.TextSize.Width, self.doc.TextSize.Height)
	return nil
}

// Renders the document. See [Render]().
func (self *Session) Render(requested *Size) (*PixelBuffer, error) {
	return Render(&self.doc, requested, self.opts)
}

func (self *Session) layoutLogicalLine(group []StyledRun) {
	self.newLine()
	if self.opts.WrapWords {
		for _, word := range splitWords(group) {
			self.placeWord(word)
		}
	} else {
		self.placeWord(group)
	}
	self.endLine()
}

// Shapes the runs as a single word, from the zero pen.
func (self *Session) shapeWord(word []StyledRun) ([]Glyph, int) {
	var pen image.Point
	var glyphs []Glyph
	for _, run := range word {
		runGlyphs, err := self.shaper.Shape(run, &pen)
		if err != nil {
			tracer().Errorf("run aborted: %v", err)
			self.opts.Observer.RunAborted(run, err)
			continue
		}
		glyphs = append(glyphs, runGlyphs...)
	}
	return glyphs, pen.X
}

func (self *Session) fits(x int) bool {
	return self.opts.MaxWidth <= 0 || x <= self.opts.MaxWidth
}

// Places the word on the open line, breaking the line first if the
// word doesn't fit, or splitting the word across multiple lines if
// it doesn't fit even on an empty line.
func (self *Session) placeWord(word []StyledRun) {
	glyphs, advance := self.shapeWord(word)
	wordBox := computeBBox(glyphs, self.opts.GlyphSpacing)
	for {
		offset := self.line.Pen.X
		bbox := wordBox.translate(offset)
		if self.line.isEmpty() || self.fits(self.line.BBox.merge(bbox).Width()) {
			if self.line.isEmpty() && !self.fits(bbox.Width()) {
				self.splitOverflow(glyphs)
				return
			}
			for i := range glyphs {
				glyphs[i].Position.X += offset
			}
			self.line.extend(glyphs, bbox)
			self.line.Pen.X += advance
			return
		}

		self.endLine()
		self.newLine()
	}
}

// Fills lines with the glyphs while they fit, starting on the open
// line, which must be empty. The last line is left open.
func (self *Session) splitOverflow(glyphs []Glyph) {
	maxWidth := self.opts.MaxWidth
	for len(glyphs) > 0 {
		bbox := BBox{ XMin: bboxSentinelMin, XMax: bboxSentinelMax }
		bbox.YMin, bbox.YMax = verticalExtent(glyphs)
		accepted := 0
		for i := range glyphs {
			xMin, xMax := glyphBox(&glyphs[i], self.opts.GlyphSpacing)
			xMin += glyphs[i].Position.X
			xMax += glyphs[i].Position.X
			merged := max(bbox.XMax, xMax) - min(bbox.XMin, xMin)
			if accepted > 0 && merged > maxWidth { break }
			bbox.XMin = min(bbox.XMin, xMin)
			bbox.XMax = max(bbox.XMax, xMax)
			accepted += 1
		}

		self.line.Glyphs = append(self.line.Glyphs, glyphs[: accepted]...)
		self.line.setBBox(bbox)
		self.line.Pen.X = bbox.XMax
		glyphs = glyphs[accepted :]
		if len(glyphs) == 0 { return }

		tracer().Debugf("splitting word, %d glyphs moved to next line", len(glyphs))
		self.endLine()
		self.newLine()
		shift := glyphs[0].Position.X
		for i := range glyphs {
			glyphs[i].Position.X -= shift
		}
	}
}

func (self *Session) newLine() {
	self.line = &Line{}
}

func (self *Session) endLine() {
	line := self.line
	line.finalize()
	self.doc.Lines = append(self.doc.Lines, line)
	self.doc.TextSize.Width = max(self.doc.TextSize.Width, line.Width)
	self.doc.TextSize.Height += line.Height
	tracer().Debugf("line %d: %d glyphs, width %d, height %d",
		len(self.doc.Lines) - 1, len(line.Glyphs), line.Width, line.Height)
	self.line = nil
}
