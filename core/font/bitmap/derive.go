package bitmap

import (
	"image/color"
	"sync"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
)

// vga8x14 drops the top and bottom row of every 8x16 glyph. Those rows are
// blank for all populated characters except the block graphics.
var vga8x14 = sync.OnceValue(func() []byte {
	table := make([]byte, 256*14)
	for c := 0; c < 256; c++ {
		copy(table[c*14:(c+1)*14], vga8x16[c*16+1:c*16+15])
	}
	return table
})

// vga8x8 halves every 8x16 glyph vertically, merging row pairs.
var vga8x8 = sync.OnceValue(func() []byte {
	table := make([]byte, 256*8)
	for c := 0; c < 256; c++ {
		for row := 0; row < 8; row++ {
			table[c*8+row] = vga8x16[c*16+2*row] | vga8x16[c*16+2*row+1]
		}
	}
	return table
})

var (
	fixed7x13 = sync.OnceValue(func() *Font {
		return fromFace(Fixed7x13, basicfont.Face7x13)
	})
	inconsolataRegular = sync.OnceValue(func() *Font {
		return fromFace(Inconsolata8x16, inconsolata.Regular8x16)
	})
	inconsolataBold = sync.OnceValue(func() *Font {
		return fromFace(Inconsolata8x16Bold, inconsolata.Bold8x16)
	})
)

// fromFace converts the Latin-1 part of a fixed-size x/image face into a
// bit table. Mask pixels with at least half coverage become set bits.
func fromFace(name string, face *basicfont.Face) *Font {
	w, h := face.Width, face.Ascent+face.Descent
	rowBytes := (w + 7) / 8
	size := rowBytes * h
	table := make([]byte, 256*size)
	var present [256]bool
	for c := 0; c < 256; c++ {
		rng, ok := faceRange(face, rune(c))
		if !ok {
			continue
		}
		present[c] = true
		top := (int(rune(c)-rng.Low) + rng.Offset) * h
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				a := color.AlphaModel.Convert(face.Mask.At(x, top+y)).(color.Alpha).A
				if a >= 0x80 {
					table[c*size+y*rowBytes+x/8] |= 0x80 >> uint(x%8)
				}
			}
		}
	}
	lh := max(face.Height, h)
	f := build(name, w, h, face.Advance, lh, table, func(i int) bool { return present[i] }, Latin1)
	for _, g := range f.glyphs {
		if g != nil {
			g.X = face.Left
		}
	}
	tracer().Debugf("converted face %s: cell %dx%d, advance %d, line height %d", name, w, h, face.Advance, lh)
	return f
}

func faceRange(face *basicfont.Face, r rune) (basicfont.Range, bool) {
	for _, rng := range face.Ranges {
		if r >= rng.Low && r < rng.High {
			return rng, true
		}
	}
	return basicfont.Range{}, false
}
