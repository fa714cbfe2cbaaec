package resources

import (
	"context"
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/font"
	"github.com/npillmayer/fbterm/core/font/bitmap"
	"github.com/npillmayer/fbterm/core/font/fontregistry"
	"github.com/npillmayer/fbterm/core/font/outline"
)

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font not found: %s", name)
}

type fontPlusErr struct {
	font font.Font
	err  error
}

// FontPromise delivers a font once it has been resolved.
type FontPromise interface {
	// Font blocks until the font is loaded.
	Font() (font.Font, error)
	// Await blocks until the font is loaded or ctx is done.
	Await(ctx context.Context) (font.Font, error)
}

type fontLoader struct {
	await func(ctx context.Context) (font.Font, error)
}

func (loader fontLoader) Font() (font.Font, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (font.Font, error) {
	return loader.await(ctx)
}

// ResolveFont resolves a font name to a font. Outline fonts are prepared at
// size points for a display of resolution dpi; both are ignored for bitmap
// fonts. Names are tried, in order, as
//
//   - the name of a compiled-in bitmap font (see bitmap.Presets)
//   - the name of a font in the global font registry
//   - the path of a TrueType or OpenType font file
//   - the name of a font installed on the system
//
// Font files found are stored in the global font registry.
func ResolveFont(name string, size, dpi float64) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		result.font, result.err = resolve(name, size, dpi)
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (font.Font, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

func resolve(name string, size, dpi float64) (font.Font, error) {
	if f, err := bitmap.Preset(name); err == nil {
		tracer().Debugf("%s is a bitmap font", name)
		return f, nil
	}
	registry := fontregistry.GlobalRegistry()
	if registry.Contains(name) {
		tracer().Debugf("%s is a registered font", name)
		return outlineFont(registry.Font(name, size, dpi))
	}
	fpath := ""
	if fi, err := os.Stat(name); err == nil && fi.Mode().IsRegular() {
		fpath = name
	} else if p, err := findfont.Find(name); err == nil && p != "" { // try to find as system font
		tracer().Debugf("%s is a system font", name)
		fpath = p
	}
	if fpath == "" {
		return nil, NotFound(name)
	}
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fpath)
	}
	if err = registry.StoreFont(fpath, data); err != nil {
		return nil, err
	}
	tracer().Infof("loaded font %s from %s", name, fpath)
	return outlineFont(registry.Font(fpath, size, dpi))
}

func outlineFont(f *outline.Font, err error) (font.Font, error) {
	if f == nil {
		return nil, err
	}
	return f, err
}
