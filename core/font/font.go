/*
Package font defines the font capability the terminal engine renders with.

A Font reports its line height and, per character, a Glyph together with a
way to sample the glyph's pixels. There are two families of fonts:

* fixed bitmap fonts, where every glyph pixel is a bit (package bitmap)

* outline fonts rasterized at a fixed size, where every glyph pixel carries
an anti-aliasing coverage value (package outline)

Glyph data is immutable once created. Fonts may hand out the same Glyph to
many callers; nobody may modify it.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fbterm.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("fbterm.fonts")
}

// Font is the capability the terminal engine needs from a font.
type Font interface {
	// LineHeight is the vertical distance between two lines of text, in pixels.
	LineHeight() int
	// Glyph returns the glyph for r, or nil if the font does not map r.
	Glyph(r rune) *Glyph
	// Sample returns the pixel of g at local coordinates (x, y), with
	// 0 ≤ x < g.Width and 0 ≤ y < g.Height.
	Sample(g *Glyph, x, y int) Sample
}

// Glyph is the rasterized form of a character.
type Glyph struct {
	Width   int    // width of the pixel data
	Height  int    // height of the pixel data
	Advance int    // horizontal step of the cursor after this glyph
	X       int    // horizontal bearing: offset of the pixel data from the cursor
	Y       int    // vertical bearing from the top of the line, may be negative
	Data    []byte // pixel data, layout is private to the font; shared, read only
}

// Empty is true if g has no pixels to draw.
func (g *Glyph) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

func (g *Glyph) String() string {
	return fmt.Sprintf("glyph[%dx%d adv=%d bearing=(%d,%d)]", g.Width, g.Height, g.Advance, g.X, g.Y)
}

// SampleMode tells how to interpret a Sample.
type SampleMode uint8

// A glyph pixel is either a single bit or an 8-bit coverage value.
const (
	Bit SampleMode = iota
	Coverage
)

// Sample is a single glyph pixel.
type Sample struct {
	Mode  SampleMode
	Value uint8 // 0 or 1 for Bit, 0…255 for Coverage
}

// BitSample creates a Bit sample.
func BitSample(set bool) Sample {
	if set {
		return Sample{Mode: Bit, Value: 1}
	}
	return Sample{Mode: Bit}
}

// CoverageSample creates a Coverage sample.
func CoverageSample(c uint8) Sample {
	return Sample{Mode: Coverage, Value: c}
}

// IsSet is true for a set bit or a non-zero coverage.
func (s Sample) IsSet() bool {
	return s.Value != 0
}

// Blank is the character fonts fall back to for unmapped characters.
const Blank = ' '

// GlyphOrBlank returns the glyph for r. If f does not map r, the glyph of
// the blank character is returned instead, together with the blank as the
// substituted character. A font which does not even map the blank violates
// the font contract and causes a panic.
func GlyphOrBlank(f Font, r rune) (rune, *Glyph) {
	if g := f.Glyph(r); g != nil {
		return r, g
	}
	tracer().Debugf("font has no glyph for %U, using blank", r)
	g := f.Glyph(Blank)
	if g == nil {
		panic(fmt.Sprintf("font %T has no glyph for blank", f))
	}
	return Blank, g
}
