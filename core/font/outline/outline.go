package outline

import (
	"fmt"
	"image/color"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultCacheSize is the number of rasterized glyphs a Font keeps.
const DefaultCacheSize = 128

// Font is a TrueType/OpenType font rasterized at a fixed size. Glyphs are
// rendered on first use and kept in a least-recently-used cache.
//
// Font is safe for concurrent use.
type Font struct {
	name       string
	size       float64
	lineHeight int
	ascent     int
	mx         sync.Mutex // guards face and stats
	face       xfont.Face
	cache      *lru.Cache[rune, *font.Glyph]
	stats      CacheStats
}

var _ font.Font = (*Font)(nil)

// CacheStats reports the efficiency of the glyph cache.
type CacheStats struct {
	Hits   int
	Misses int
	Len    int
}

func (s CacheStats) String() string {
	return fmt.Sprintf("glyph cache: %d hits, %d misses, %d entries", s.Hits, s.Misses, s.Len)
}

// Option configures a Font.
type Option func(*config)

type config struct {
	cacheSize int
	dpi       float64
	name      string
}

// CacheSize sets the capacity of the glyph cache.
func CacheSize(n int) Option {
	return func(c *config) { c.cacheSize = n }
}

// DPI sets the resolution the font size is interpreted at. The default is
// 72, making the size a size in pixels.
func DPI(dpi float64) Option {
	return func(c *config) { c.dpi = dpi }
}

// Name sets a descriptive name, used for tracing.
func Name(name string) Option {
	return func(c *config) { c.name = name }
}

// New parses TrueType or OpenType font data and prepares rasterizing at
// size. Malformed data and invalid options yield an EINVALID error.
func New(data []byte, size float64, opts ...Option) (*Font, error) {
	conf := config{cacheSize: DefaultCacheSize, dpi: 72, name: "outline"}
	for _, opt := range opts {
		opt(&conf)
	}
	if size <= 0 || conf.dpi <= 0 {
		return nil, core.Error(core.EINVALID, "invalid font size %.1f at %.0f dpi", size, conf.dpi)
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font %s", conf.name)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size: size,
		DPI:  conf.dpi,
	})
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot create face for font %s", conf.name)
	}
	cache, err := lru.New[rune, *font.Glyph](conf.cacheSize)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot create glyph cache of size %d", conf.cacheSize)
	}
	m := face.Metrics()
	f := &Font{
		name:       conf.name,
		size:       size,
		lineHeight: int(1.25 * float64(m.Height) / 64),
		ascent:     m.Ascent.Ceil(),
		face:       face,
		cache:      cache,
	}
	tracer().Infof("outline font %s at %.1f (%.0f dpi): line height %d, ascent %d",
		f.name, size, conf.dpi, f.lineHeight, f.ascent)
	return f, nil
}

// GoMono returns the Go Mono font at size.
func GoMono(size float64, opts ...Option) (*Font, error) {
	opts = append([]Option{Name("Go Mono")}, opts...)
	return New(gomono.TTF, size, opts...)
}

// LineHeight is 1.25 times the font's natural line height, leaving room
// between lines.
func (f *Font) LineHeight() int {
	return f.lineHeight
}

// Glyph returns the rasterized glyph for r, or nil if the font has no
// glyph for r. The baseline of glyphs sits at the font's ascent, measured
// from the top of the line.
func (f *Font) Glyph(r rune) *font.Glyph {
	f.mx.Lock()
	defer f.mx.Unlock()
	if g, ok := f.cache.Get(r); ok {
		f.stats.Hits++
		return g
	}
	f.stats.Misses++
	g := f.rasterize(r)
	if g != nil {
		f.cache.Add(r, g)
	}
	return g
}

// rasterize renders r with its origin on the baseline and copies the
// coverage out of the face's mask, which is reused for the next glyph.
func (f *Font) rasterize(r rune) *font.Glyph {
	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		tracer().Debugf("font %s has no glyph for %U", f.name, r)
		return nil
	}
	g := &font.Glyph{
		Width:   dr.Dx(),
		Height:  dr.Dy(),
		Advance: advance.Floor(),
		X:       dr.Min.X,
		Y:       f.ascent + dr.Min.Y,
	}
	if g.Empty() {
		return g
	}
	g.Data = make([]byte, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			a := color.AlphaModel.Convert(mask.At(maskp.X+x, maskp.Y+y)).(color.Alpha)
			g.Data[y*g.Width+x] = a.A
		}
	}
	tracer().Debugf("rasterized %q in %s: %v", r, f.name, g)
	return g
}

// Sample returns the anti-aliasing coverage of a glyph pixel.
func (f *Font) Sample(g *font.Glyph, x, y int) font.Sample {
	return font.CoverageSample(g.Data[y*g.Width+x])
}

// Stats reports glyph cache efficiency.
func (f *Font) Stats() CacheStats {
	f.mx.Lock()
	defer f.mx.Unlock()
	s := f.stats
	s.Len = f.cache.Len()
	return s
}

// Size returns the size the font is rasterized at.
func (f *Font) Size() float64 {
	return f.size
}

func (f *Font) String() string {
	return fmt.Sprintf("outline:%s@%.1f", f.name, f.size)
}
