package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/dimen"
	"github.com/npillmayer/fbterm/core/font/fontregistry"
	"github.com/npillmayer/fbterm/core/locate/resources"
	"github.com/npillmayer/fbterm/engine/term"
	"github.com/pterm/pterm"
	"golang.org/x/text/encoding/charmap"
)

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	term *term.Guarded
	out  string
	size dimen.Dimen
	dpi  float64
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
		if err = intp.shipout(); err != nil {
			pterm.Error.Println(core.UserMessage(err))
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		intp.term.Print(line + "\n")
		return false, nil
	}
	args := strings.Fields(line[1:])
	if len(args) == 0 {
		return false, nil
	}
	tracer().Debugf("command %v", args)
	switch strings.ToLower(args[0]) {
	case "quit", "q":
		return true, nil
	case "clear":
		intp.term.Do(func(t *term.Terminal) { t.Clear() })
	case "stats":
		fontregistry.GlobalRegistry().LogFontList()
	case "font":
		if len(args) < 2 {
			return false, core.Error(core.EINVALID, "usage: :font <name> [size]")
		}
		size := intp.size
		if len(args) > 2 {
			d, err := dimen.ParseDimen(args[2])
			if err != nil {
				return false, err
			}
			size = d
		}
		f, err := resources.ResolveFont(args[1], size.Points(), intp.dpi).Font()
		if err != nil {
			return false, err
		}
		intp.term.Swap(f)
		pterm.Info.Printfln("font is %v", f)
	default:
		return false, core.Error(core.EINVALID, "unknown command :%s", args[0])
	}
	return false, nil
}

// showCharacters prints every character of code page 437, the native
// character set of VGA fonts.
func showCharacters(t *term.Terminal) {
	t.Print("Show all characters:\n")
	for i := 0; i < 256; i++ {
		r := charmap.CodePage437.DecodeByte(byte(i))
		switch r {
		case '\n', '\r', '\t', '\b':
			r = ' '
		}
		t.Putc(r)
	}
	t.Print(`
Any line you type will be displayed on the screen.
`)
}
