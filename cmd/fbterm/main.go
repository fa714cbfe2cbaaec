/*
Command fbterm exercises a terminal on an in-memory framebuffer.

It prints all 256 characters of the selected font, then echoes every line
typed to the terminal. After each command the hardware-visible buffer is
written to an image file, PNG or BMP depending on the file extension.

Lines starting with a colon are commands:

   :font <name> [size]   change the font, size as in 12pt or 16px
   :clear                clear the screen
   :stats                log the loaded fonts
   :quit                 leave (as does <ctrl>D)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fbterm/backend/framebuffer"
	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/dimen"
	"github.com/npillmayer/fbterm/core/locate/resources"
	"github.com/npillmayer/fbterm/core/mmio"
	"github.com/npillmayer/fbterm/core/pixel"
	"github.com/npillmayer/fbterm/engine/term"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fbterm.cli'
func tracer() tracing.Trace {
	return tracing.Select("fbterm.cli")
}

var (
	background = color.RGBA{0, 0, 0xa8, 0xff}
	foreground = color.RGBA{0xa8, 0xa8, 0xa8, 0xff}
)

func main() {
	initDisplay()

	// command line flags
	width := flag.Int("width", 640, "Width of the screen in pixels")
	height := flag.Int("height", 400, "Height of the screen in pixels")
	fontname := flag.String("font", "VGA8x16", "Font preset, font name or font file")
	size := flag.String("size", "16px", "Size of outline fonts (px, pt, mm, in)")
	dpi := flag.Float64("dpi", dimen.DefaultDPI, "Resolution of the screen")
	format := flag.String("format", "BGRA8888", "Pixel format")
	double := flag.Bool("double", true, "Use a work buffer")
	out := flag.String("out", "fbterm.png", "Image file to write the screen to (.png or .bmp)")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.fbterm.cli":         *tlevel,
		"trace.fbterm.term":        *tlevel,
		"trace.fbterm.fonts":       *tlevel,
		"trace.fbterm.resources":   *tlevel,
		"trace.fbterm.memory":      "Error",
		"trace.fbterm.framebuffer": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the framebuffer terminal")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	fb, err := setupFramebuffer(*width, *height, *format, *double)
	if err != nil {
		exit(err, 2)
	}
	fsize, err := dimen.ParseDimen(*size)
	if err != nil {
		exit(err, 3)
	}
	f, err := resources.ResolveFont(*fontname, fsize.Points(), *dpi).Font()
	if err != nil {
		exit(err, 3)
	}
	pterm.Info.Printfln("screen %dx%d in %s, font %v (%.1f px)", fb.Width(), fb.Height(), fb.Format().Name(),
		f, fsize.Pixels(*dpi))
	t := term.New(fb, f)
	t.Clear()
	showCharacters(t)
	//
	// set up REPL
	repl, err := readline.New("fbterm > ")
	if err != nil {
		exit(err, 4)
	}
	intp := &Intp{
		repl: repl,
		term: term.NewGuarded(t),
		out:  *out,
		size: fsize,
		dpi:  *dpi,
	}
	if err = intp.shipout(); err != nil {
		exit(err, 5)
	}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                            // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func exit(err error, code int) {
	core.UserError(os.Stderr, err)
	tracer().Errorf(err.Error())
	os.Exit(code)
}

// setupFramebuffer allocates screen memory, which in a real system would
// be handed to us by the firmware.
func setupFramebuffer(w, h int, fname string, double bool) (*framebuffer.Framebuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, core.Error(core.EINVALID, "invalid screen size %dx%d", w, h)
	}
	format, err := pixel.Lookup(fname)
	if err != nil {
		return nil, err
	}
	n := w * h * format.Size()
	bg := encode(format, background)
	fg := encode(format, foreground)
	fb := framebuffer.New(mmio.Alloc(n), w, h, w, format, bg, fg)
	fb.Clear()
	if double {
		fb.SetDoubleBuffer(mmio.Alloc(n))
	}
	return fb, nil
}

func encode(f pixel.Format, c color.RGBA) pixel.Pixel {
	return f.Encode(c.R, c.G, c.B, c.A)
}
