package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/engine/term"
	"golang.org/x/image/bmp"
)

// shipout writes the hardware-visible buffer to the output file, as a
// display controller would scan it out.
func (intp *Intp) shipout() error {
	var img image.Image
	intp.term.Do(func(t *term.Terminal) {
		img = t.Framebuffer().Snapshot()
	})
	file, err := os.Create(intp.out)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot create %s", intp.out)
	}
	defer file.Close()
	switch strings.ToLower(filepath.Ext(intp.out)) {
	case ".bmp":
		err = bmp.Encode(file, img)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write %s", intp.out)
	}
	tracer().Debugf("screen written to %s", intp.out)
	return nil
}
