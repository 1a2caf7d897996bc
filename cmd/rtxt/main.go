// Command rtxt renders rich text markup into PNG images.
//
// Usage:
//
//	rtxt [flags] [markup]
//
// The markup is taken from the arguments, from the -in file, or from the
// standard input, in that order. See package markup for the tag syntax.
// With -repl, markup lines are read interactively instead.
package main

import "flag"
import "fmt"
import "io"
import "os"
import "strings"

import "github.com/npillmayer/schuko/schukonf/testconfig"
import "github.com/npillmayer/schuko/tracing"
import "github.com/npillmayer/schuko/tracing/gologadapter"
import "github.com/npillmayer/schuko/tracing/trace2go"
import "github.com/pterm/pterm"

// tracer traces with key 'rtxt.cli'
func tracer() tracing.Trace {
	return tracing.Select("rtxt.cli")
}

type config struct {
	in string
	out string
	fontsDir string
	emojiDir string
	family string
	size int
	color string
	width int
	height int
	wrap bool
	spacing int
	lean float64
	preview bool
	repl bool
	traceLevel string
}

func main() {
	initDisplay()

	// tracing goes through the go logger, every package at the same level
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{ "tracing.adapter": "go" }
	for _, key := range traceKeys {
		conf["trace." + key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	var cfg config
	flag.StringVar(&cfg.in, "in", "", "File with the markup to render")
	flag.StringVar(&cfg.out, "out", "rtxt.png", "Output PNG file")
	flag.StringVar(&cfg.fontsDir, "fonts", "", "Directory with .ttf and .otf fonts")
	flag.StringVar(&cfg.emojiDir, "emoji", "", "Directory with emoji PNGs named by code point (e.g. 1f600.png)")
	flag.StringVar(&cfg.family, "family", "", "Base font family, Go Regular when empty or not found")
	flag.IntVar(&cfg.size, "size", 24, "Base font size in pixels")
	flag.StringVar(&cfg.color, "color", "#000000", "Base text color")
	flag.IntVar(&cfg.width, "width", 0, "Image width, also the wrapping width (0 to fit the text)")
	flag.IntVar(&cfg.height, "height", 0, "Image height (0 to fit the text)")
	flag.BoolVar(&cfg.wrap, "wrap", false, "Wrap lines at spaces")
	flag.IntVar(&cfg.spacing, "spacing", 2, "Extra spacing between glyphs")
	flag.Float64Var(&cfg.lean, "lean", 0.3, "Italic lean")
	flag.BoolVar(&cfg.preview, "preview", false, "Print a preview of the image to the terminal")
	flag.BoolVar(&cfg.repl, "repl", false, "Read markup lines interactively")
	flag.StringVar(&cfg.traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()

	if err := setTraceLevel(cfg.traceLevel); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	app, err := newApp(cfg)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}

	if cfg.repl {
		if err := app.REPL(); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(4)
		}
		return
	}

	text, err := readMarkup(cfg.in, flag.Args(), os.Stdin)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	if err := app.run(text); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(5)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text: " i ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text: " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

var traceKeys = []string{
	"rtxt.cli", "rtxt.layout", "rtxt.font", "rtxt.cache",
	"rtxt.markup", "rtxt.emoji", "rtxt.sizer",
}

func setTraceLevel(level string) error {
	for _, key := range traceKeys {
		trace := tracing.Select(key)
		switch level {
		case "Debug": trace.SetTraceLevel(tracing.LevelDebug)
		case "Info": trace.SetTraceLevel(tracing.LevelInfo)
		case "Error": trace.SetTraceLevel(tracing.LevelError)
		default:
			return fmt.Errorf("invalid trace level '%s'", level)
		}
	}
	return nil
}

func readMarkup(path string, args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 { return strings.Join(args, " "), nil }
	if path != "" {
		data, err := os.ReadFile(path)
		return string(data), err
	}
	data, err := io.ReadAll(stdin)
	return string(data), err
}
