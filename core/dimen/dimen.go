// Package dimen implements dimensions and units for font sizes.
//
// Outline fonts are rasterized at a size in pixels. Users tend to think of
// font sizes in printer's points, which map to pixels depending on the
// resolution of the display. Dimensions bridge the two.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/npillmayer/fbterm/core"
)

// Dimen is a dimension type.
// Values are in scaled big points, where a big point is 1/72 inch.
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // a pixel at 72 dpi
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// DefaultDPI is the resolution at which a big point equals a pixel.
const DefaultDPI = 72.0

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// Pixels returns a dimension in pixels on a display of resolution dpi.
func (d Dimen) Pixels(dpi float64) float64 {
	return d.Points() * dpi / DefaultDPI
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)([a-zA-Z]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit,
// with units px, pt, bp, mm, cm, in and sp. A number without a unit is
// taken as pixels. Malformed input yields an EINVALID error.
func ParseDimen(s string) (Dimen, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	scale := PX
	switch d[2] {
	case "pt", "PT":
		scale = PT
	case "mm", "MM":
		scale = MM
	case "bp", "px", "BP", "PX", "":
		scale = BP
	case "cm", "CM":
		scale = CM
	case "in", "IN":
		scale = IN
	case "sp", "SP":
		scale = SP
	default:
		return 0, core.Error(core.EINVALID, "unknown unit %q in dimension %q", d[2], s)
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "format error parsing dimension %q", s)
	}
	v := math.Round(n * float64(scale))
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, core.Error(core.EINVALID, "dimension %q out of range", s)
	}
	return Dimen(v), nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
