package bitmap

import (
	"strings"

	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/font"
	"golang.org/x/text/encoding/charmap"
)

// Encoding maps a character to its index in a glyph table. The boolean
// result is false for characters the encoding cannot represent.
type Encoding func(r rune) (byte, bool)

// CP437 is the IBM PC code page, the native encoding of VGA ROM fonts.
func CP437(r rune) (byte, bool) {
	return charmap.CodePage437.EncodeRune(r)
}

// Latin1 maps the first 256 Unicode code points to themselves.
func Latin1(r rune) (byte, bool) {
	if r < 0 || r > 0xff {
		return 0, false
	}
	return byte(r), true
}

// Font is a monospaced font with one bitmap per character. Glyph rows are
// stored MSB first, (width+7)/8 bytes per row.
//
// A Font is immutable and may be shared between terminals.
type Font struct {
	name       string
	lineHeight int
	rowBytes   int
	enc        Encoding
	glyphs     [256]*font.Glyph
}

var _ font.Font = (*Font)(nil)

// New creates a font from a compiled-in glyph table. The table holds
// consecutive glyphs of height rows each, indexed by the byte enc maps a
// character to. A table with a partial glyph, no glyph at all or more than
// 256 glyphs is rejected with an EINVALID error.
func New(name string, width, height int, table []byte, enc Encoding) (*Font, error) {
	if width <= 0 || height <= 0 {
		return nil, core.Error(core.EINVALID, "bitmap font %q has invalid cell size %dx%d", name, width, height)
	}
	if enc == nil {
		return nil, core.Error(core.EINVALID, "bitmap font %q has no encoding", name)
	}
	size := (width + 7) / 8 * height
	if len(table) == 0 || len(table)%size != 0 {
		return nil, core.Error(core.EINVALID, "bitmap font %q: table of %d bytes is not a multiple of glyph size %d",
			name, len(table), size)
	}
	if n := len(table) / size; n > 256 {
		return nil, core.Error(core.EINVALID, "bitmap font %q: table holds %d glyphs, at most 256 allowed", name, n)
	}
	f := build(name, width, height, width, height, table, nil, enc)
	tracer().Debugf("bitmap font %s: %dx%d, %d glyphs", name, width, height, len(table)/size)
	return f, nil
}

// build assembles a font from a validated table. If present is non-nil, it
// tells which table entries hold a glyph.
func build(name string, width, height, advance, lineHeight int, table []byte,
	present func(int) bool, enc Encoding) *Font {
	//
	f := &Font{
		name:       name,
		lineHeight: lineHeight,
		rowBytes:   (width + 7) / 8,
		enc:        enc,
	}
	size := f.rowBytes * height
	for i := 0; i < len(table)/size && i < 256; i++ {
		if present != nil && !present(i) {
			continue
		}
		f.glyphs[i] = &font.Glyph{
			Width:   width,
			Height:  height,
			Advance: advance,
			Data:    table[i*size : (i+1)*size : (i+1)*size],
		}
	}
	return f
}

// Name returns the name the font was created with.
func (f *Font) Name() string {
	return f.name
}

// LineHeight is the cell height of the font.
func (f *Font) LineHeight() int {
	return f.lineHeight
}

// Glyph returns the bitmap for r, or nil if r is not in the font's encoding
// or has no glyph in the table.
func (f *Font) Glyph(r rune) *font.Glyph {
	c, ok := f.enc(r)
	if !ok {
		return nil
	}
	return f.glyphs[c]
}

// Sample tests a single bit of g.
func (f *Font) Sample(g *font.Glyph, x, y int) font.Sample {
	b := g.Data[y*f.rowBytes+x/8]
	return font.BitSample(b&(0x80>>uint(x%8)) != 0)
}

func (f *Font) String() string {
	return "bitmap:" + f.name
}

// --- Presets ---------------------------------------------------------------

// Names of the compiled-in fonts.
const (
	VGA8x8              = "VGA8x8"
	VGA8x14             = "VGA8x14"
	VGA8x16             = "VGA8x16"
	Fixed7x13           = "Fixed7x13"
	Inconsolata8x16     = "Inconsolata8x16"
	Inconsolata8x16Bold = "Inconsolata8x16Bold"
)

var presets = map[string]func() *Font{
	VGA8x8: func() *Font {
		return build(VGA8x8, 8, 8, 8, 8, vga8x8(), vgaDefined, CP437)
	},
	VGA8x14: func() *Font {
		return build(VGA8x14, 8, 14, 8, 14, vga8x14(), vgaDefined, CP437)
	},
	VGA8x16: func() *Font {
		return build(VGA8x16, 8, 16, 8, 16, vga8x16, vgaDefined, CP437)
	},
	Fixed7x13:           func() *Font { return fixed7x13() },
	Inconsolata8x16:     func() *Font { return inconsolataRegular() },
	Inconsolata8x16Bold: func() *Font { return inconsolataBold() },
}

// Presets lists the names of all compiled-in fonts.
func Presets() []string {
	return []string{VGA8x8, VGA8x14, VGA8x16, Fixed7x13, Inconsolata8x16, Inconsolata8x16Bold}
}

// Preset returns a compiled-in font. Names are matched case-insensitively.
// Unknown names yield an EMISSING error.
func Preset(name string) (*Font, error) {
	for n, mk := range presets {
		if strings.EqualFold(n, name) {
			return mk(), nil
		}
	}
	return nil, core.Error(core.EMISSING, "no bitmap font named %q", name)
}
