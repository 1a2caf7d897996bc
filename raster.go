package rtxt

import "image"

import "github.com/tinne26/rtxt/cache"
import "github.com/tinne26/rtxt/fract"
import "github.com/tinne26/rtxt/mask"

// Renders the document into a new pixel buffer.
//
// Each requested dimension that's zero (or a nil request) takes the
// document's text size instead. Lines are stacked from the top, each
// one with its baseline at its BBox.YMax plus its index times its own
// height. Glyphs are drawn in reverse order, and pixels falling outside
// the buffer are discarded.
//
// The only error is [ErrAllocation], when the buffer can't be created.
func Render(doc *Document, requested *Size, opts Options) (*PixelBuffer, error) {
	opts = opts.withDefaults()
	size := doc.TextSize
	if requested != nil {
		if requested.Width  != 0 { size.Width  = requested.Width  }
		if requested.Height != 0 { size.Height = requested.Height }
	}
	buffer, err := newPixelBuffer(size.Width, size.Height, opts.MaxBufferBytes)
	if err != nil { return nil, err }

	renderer := newRenderer(buffer, opts)
	for i, line := range doc.Lines {
		origin := image.Pt(-line.BBox.XMin, line.BBox.YMax + i*line.Height)
		renderer.drawLine(line, origin)
	}
	tracer().Infof("rendered %d lines into %dx%d buffer", len(doc.Lines), size.Width, size.Height)
	if renderer.cacheHandler != nil {
		masks := renderer.cacheHandler.Cache()
		tracer().Debugf("mask cache: %d masks, %d bytes", masks.Len(), masks.ApproxByteSize())
	}
	return buffer, nil
}

type renderer struct {
	buffer *PixelBuffer
	opts Options
	regular mask.Rasterizer
	bold mask.Rasterizer
	shear mask.Transform
	cacheHandler *cache.Handler // may be nil
}

func newRenderer(buffer *PixelBuffer, opts Options) *renderer {
	var handler *cache.Handler
	if opts.MaskCache != nil { handler = opts.MaskCache.NewHandler() }
	return &renderer{
		buffer: buffer,
		opts: opts,
		regular: opts.NewRasterizer(false),
		bold: opts.NewRasterizer(true),
		shear: mask.NewShear(opts.ItalicLean),
		cacheHandler: handler,
	}
}

func (self *renderer) drawLine(line *Line, origin image.Point) {
	for i := len(line.Glyphs) - 1; i >= 0; i-- {
		glyph := &line.Glyphs[i]
		if glyph.IsEmoji {
			self.drawEmoji(glyph, line.Height, origin)
			continue
		}

		glyphMask := self.glyphMask(glyph)
		x := origin.X + glyph.Position.X
		y := origin.Y - glyph.Position.Y
		left := 0
		if glyphMask != nil {
			self.buffer.drawMask(glyphMask, x, y, glyph.Color)
			left = glyphMask.Rect.Min.X
		}

		if glyph.Underline {
			self.buffer.drawHorzLine(x + left, x + left + glyph.Width, origin.Y + 2, glyph.Color)
		}
		if glyph.Strikethrough {
			strikeY := origin.Y - glyph.FontSize/3
			self.buffer.drawHorzLine(x + left, x + left + glyph.Width, strikeY, glyph.Color)
		}
	}
}

func (self *renderer) glyphMask(glyph *Glyph) *image.Alpha {
	rasterizer := self.regular
	if glyph.Bold { rasterizer = self.bold }

	if self.cacheHandler != nil {
		self.cacheHandler.NotifyFaceChange(glyph.Face)
		self.cacheHandler.NotifyRasterizerChange(rasterizer)
		if glyph.Italic {
			self.cacheHandler.NotifyTransformChange(self.shear)
		} else {
			self.cacheHandler.NotifyTransformChange(mask.Identity())
		}
		glyphMask, found := self.cacheHandler.GetMask(glyph.Index)
		if found { return glyphMask }
	}

	glyphMask, err := mask.Rasterize(glyph.Outline, rasterizer, fract.Point{})
	if err != nil {
		tracer().Errorf("rasterizing %U: %v", glyph.CodePoint, err)
		return nil
	}
	if self.cacheHandler != nil {
		self.cacheHandler.PassMask(glyph.Index, glyphMask)
	}
	return glyphMask
}

// Emoji images are squares of the line height rounded down to an even
// size, with their bottom on the baseline.
func (self *renderer) drawEmoji(glyph *Glyph, lineHeight int, origin image.Point) {
	if self.opts.Emoji == nil { return }
	size := lineHeight &^ 1
	if size <= 0 { return }
	img := self.opts.Emoji.Image(glyph.CodePoint, size)
	if img == nil { return }
	img = self.opts.Scaler.Scale(img, size)
	if img == nil { return }
	at := image.Pt(origin.X + glyph.Position.X, origin.Y - size)
	self.opts.EmojiCompositor(self.buffer.NRGBA(), img, at)
}
