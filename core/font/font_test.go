package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type onlyBlank struct {
	blank *Glyph
}

func (f onlyBlank) LineHeight() int { return 4 }

func (f onlyBlank) Glyph(r rune) *Glyph {
	if r == ' ' {
		return f.blank
	}
	return nil
}

func (f onlyBlank) Sample(g *Glyph, x, y int) Sample { return BitSample(false) }

func TestGlyphOrBlankFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.fonts")
	defer teardown()
	//
	f := onlyBlank{blank: &Glyph{Width: 2, Height: 4, Advance: 2}}
	r, g := GlyphOrBlank(f, 'x')
	assert.Equal(t, ' ', r)
	assert.Same(t, f.blank, g)
	r, g = GlyphOrBlank(f, ' ')
	assert.Equal(t, ' ', r)
	assert.Same(t, f.blank, g)
}

func TestGlyphOrBlankWithoutBlankPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.fonts")
	defer teardown()
	//
	assert.Panics(t, func() { GlyphOrBlank(onlyBlank{}, 'x') })
}

func TestSamples(t *testing.T) {
	assert.True(t, BitSample(true).IsSet())
	assert.False(t, BitSample(false).IsSet())
	assert.Equal(t, Coverage, CoverageSample(7).Mode)
	assert.True(t, (&Glyph{Width: 0, Height: 3}).Empty())
	assert.False(t, (&Glyph{Width: 1, Height: 1}).Empty())
}
