package main

import "fmt"
import "image/color"
import "image/png"
import "os"
import "strings"

import "github.com/mattn/go-runewidth"
import "github.com/pterm/pterm"

import "github.com/tinne26/rtxt"
import "github.com/tinne26/rtxt/cache"
import "github.com/tinne26/rtxt/emoji"
import "github.com/tinne26/rtxt/font"
import "github.com/tinne26/rtxt/markup"

// Glyph masks are shared by all the layouts of a run.
const maskCacheBytes = 16 << 20

type app struct {
	cfg config
	base rtxt.FontStyle
	opts rtxt.Options
	session *rtxt.Session
}

func newApp(cfg config) (*app, error) {
	library := font.NewLibrary()
	if cfg.fontsDir != "" {
		added, skipped, err := library.ParseAllFromPath(cfg.fontsDir)
		if err != nil { return nil, err }
		pterm.Info.Printf("loaded %d fonts from %s (%d skipped)\n", added, cfg.fontsDir, skipped)
	}
	context, err := font.NewDefaultContext(library)
	if err != nil { return nil, err }

	baseColor, ok := markup.ParseColor(cfg.color)
	if !ok { return nil, fmt.Errorf("invalid color '%s'", cfg.color) }
	if cfg.size <= 0 { return nil, fmt.Errorf("invalid font size %d", cfg.size) }
	base := rtxt.FontStyle{ Family: cfg.family, Size: cfg.size, Color: baseColor }

	opts := rtxt.DefaultOptions()
	opts.Fonts = context
	opts.MaxWidth = cfg.width
	opts.WrapWords = cfg.wrap
	opts.GlyphSpacing = cfg.spacing
	opts.ItalicLean = cfg.lean
	opts.Observer = &cliObserver{}
	opts.MaskCache = cache.NewDefaultCache(maskCacheBytes)
	if cfg.emojiDir != "" {
		opts.Emoji = emoji.NewFSProvider(os.DirFS(cfg.emojiDir), ".")
		opts.EmojiCompositor = emoji.DrawOver
	}

	return &app{ cfg: cfg, base: base, opts: opts, session: rtxt.NewSession(opts) }, nil
}

// Lays out the markup after the current document contents.
func (self *app) add(text string) error {
	runs, err := markup.Parse(text, self.base)
	if err != nil { return err }
	tracer().Debugf("markup parsed into %d runs", len(runs))
	return self.session.Add(runs)
}

func (self *app) run(text string) error {
	err := self.add(strings.TrimRight(text, "\n"))
	if err != nil { return err }
	printStats(self.session.Document())
	return self.save(self.cfg.out)
}

// Renders the document and writes it as a PNG.
func (self *app) save(path string) error {
	buffer, err := self.session.Render(&rtxt.Size{ Width: self.cfg.width, Height: self.cfg.height })
	if err != nil { return err }
	if self.cfg.preview {
		for _, line := range previewLines(buffer, previewBackground) {
			fmt.Println(line)
		}
	}

	file, err := os.Create(path)
	if err != nil { return err }
	err = png.Encode(file, buffer.NRGBA())
	closeErr := file.Close()
	if err != nil { return err }
	if closeErr != nil { return closeErr }
	pterm.Success.Printf("%dx%d image written to %s\n", buffer.Width, buffer.Height, path)
	return nil
}

const statsTextWidth = 32

func statsTable(doc *rtxt.Document) [][]string {
	data := [][]string{
		{"Line", "Glyphs", "Width", "Height", "Text"},
	}
	for i, line := range doc.Lines {
		var text strings.Builder
		for _, glyph := range line.Glyphs {
			text.WriteRune(glyph.CodePoint)
		}
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", len(line.Glyphs)),
			fmt.Sprintf("%d", line.Width),
			fmt.Sprintf("%d", line.Height),
			runewidth.Truncate(text.String(), statsTextWidth, "…"),
		})
	}
	return data
}

func printStats(doc *rtxt.Document) {
	pterm.Printf("%d lines, text size %dx%d\n", len(doc.Lines), doc.TextSize.Width, doc.TextSize.Height)
	if len(doc.Lines) == 0 { return }
	pterm.DefaultTable.WithHasHeader().WithData(statsTable(doc)).Render()
}

// Reports dropped text as warnings.
type cliObserver struct{}

func (cliObserver) GlyphDropped(codePoint rune, style rtxt.FontStyle) {
	pterm.Warning.Printf("no glyph for %U at %dpx\n", codePoint, style.Size)
}

func (cliObserver) RunAborted(run rtxt.StyledRun, err error) {
	pterm.Warning.Printf("skipped %q: %v\n", run.Text, err)
}

var previewBackground = color.RGBA{255, 255, 255, 255}
