package pixel

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fbterm/core"
)

// Pixel is the native value of a pixel, as stored in framebuffer memory.
// Only the lowest Format.Size() bytes are significant.
type Pixel uint32

// Format encodes and decodes 4-channel colors to and from native pixel values.
type Format interface {
	Name() string
	Size() int // bytes per pixel, 2 or 4
	Encode(r, g, b, a uint8) Pixel
	Decode(p Pixel) (r, g, b, a uint8)
}

// Channel describes where a color channel lives within a packed pixel.
// A channel with zero bits is not stored; it decodes as 0xff.
type Channel struct {
	Shift uint8
	Bits  uint8
}

func (c Channel) encode(v uint8) Pixel {
	if c.Bits == 0 {
		return 0
	}
	return Pixel(v>>(8-c.Bits)) << c.Shift
}

func (c Channel) decode(p Pixel) uint8 {
	if c.Bits == 0 {
		return 0xff
	}
	mask := Pixel(1)<<c.Bits - 1
	return uint8((p>>c.Shift)&mask) << (8 - c.Bits)
}

// Layout is a packed pixel format, parameterized by its byte size and the
// position and depth of each channel. All formats of this package are Layouts.
type Layout struct {
	name       string
	size       int
	R, G, B, A Channel
}

// NewLayout creates a packed pixel layout. size must be 2 or 4 and every
// channel must fit into size bytes.
func NewLayout(name string, size int, r, g, b, a Channel) (Layout, error) {
	if size != 2 && size != 4 {
		return Layout{}, core.Error(core.EINVALID, "pixel size must be 2 or 4 bytes, is %d", size)
	}
	for _, c := range []Channel{r, g, b, a} {
		if c.Bits > 8 || int(c.Shift)+int(c.Bits) > size*8 {
			return Layout{}, core.Error(core.EINVALID, "channel %+v does not fit into %d bytes", c, size)
		}
	}
	return Layout{name: name, size: size, R: r, G: g, B: b, A: a}, nil
}

func mustLayout(name string, size int, r, g, b, a Channel) Layout {
	l, err := NewLayout(name, size, r, g, b, a)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the layout's name, e.g. "BGRA8888".
func (l Layout) Name() string { return l.name }

// Size returns the number of bytes per pixel.
func (l Layout) Size() int { return l.size }

// Encode packs a color into a native pixel value. Channels are truncated to
// their bit depth.
func (l Layout) Encode(r, g, b, a uint8) Pixel {
	return l.R.encode(r) | l.G.encode(g) | l.B.encode(b) | l.A.encode(a)
}

// Decode unpacks a native pixel value.
func (l Layout) Decode(p Pixel) (r, g, b, a uint8) {
	return l.R.decode(p), l.G.decode(p), l.B.decode(p), l.A.decode(p)
}

func (l Layout) String() string {
	return l.name
}

// Supported formats. Layouts describe packed native values; byte order in
// memory follows the machine's endianness (little-endian on all common
// display hardware).
var (
	// BGRA8888 is stored as bytes B, G, R, A, as used by UEFI GOP and most
	// display APIs.
	BGRA8888 Format = mustLayout("BGRA8888", 4,
		Channel{16, 8}, Channel{8, 8}, Channel{0, 8}, Channel{24, 8})
	// XRGB8888 has an unused pad byte where alpha would go.
	XRGB8888 Format = mustLayout("XRGB8888", 4,
		Channel{16, 8}, Channel{8, 8}, Channel{0, 8}, Channel{})
	// RGB565 packs 5/6/5 bits of red/green/blue; alpha is discarded.
	RGB565 Format = mustLayout("RGB565", 2,
		Channel{11, 5}, Channel{5, 6}, Channel{0, 5}, Channel{})
	// RGBA8888 is the SDL packed format, stored as bytes A, B, G, R.
	RGBA8888 Format = mustLayout("RGBA8888", 4,
		Channel{24, 8}, Channel{16, 8}, Channel{8, 8}, Channel{0, 8})
)

var formats = []Format{BGRA8888, XRGB8888, RGB565, RGBA8888}

// Formats returns all built-in formats.
func Formats() []Format {
	f := make([]Format, len(formats))
	copy(f, formats)
	return f
}

// Lookup finds a built-in format by name, ignoring case.
func Lookup(name string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(f.Name(), name) {
			return f, nil
		}
	}
	return nil, core.Error(core.EMISSING, "no pixel format named %q", name)
}

// Blend interpolates linearly between background and foreground, per channel:
//
//	bg + (fg - bg) * coverage / 256
//
// using truncating integer arithmetic. Coverage 0 yields exactly bg and
// coverage 255 yields exactly fg.
func Blend(f Format, bg, fg Pixel, coverage uint8) Pixel {
	switch coverage {
	case 0:
		return bg
	case 255:
		return fg
	}
	br, bgg, bb, ba := f.Decode(bg)
	fr, fgg, fb, fa := f.Decode(fg)
	return f.Encode(
		lerp(br, fr, coverage),
		lerp(bgg, fgg, coverage),
		lerp(bb, fb, coverage),
		lerp(ba, fa, coverage),
	)
}

func lerp(from, to, coverage uint8) uint8 {
	return uint8(int(from) + (int(to)-int(from))*int(coverage)/256)
}

// Describe formats a pixel as its decoded channels, for tracing.
func Describe(f Format, p Pixel) string {
	r, g, b, a := f.Decode(p)
	return fmt.Sprintf("%s(%d,%d,%d,%d)", f.Name(), r, g, b, a)
}
