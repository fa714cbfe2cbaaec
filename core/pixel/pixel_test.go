package pixel

import (
	"testing"

	"github.com/npillmayer/fbterm/core"
	"github.com/stretchr/testify/assert"
)

var samples = [][4]uint8{
	{0, 0, 0, 0},
	{255, 255, 255, 255},
	{0x12, 0x34, 0x56, 0x78},
	{0xa8, 0xa8, 0xa8, 0xff},
	{1, 2, 3, 4},
	{0xfe, 0x7f, 0x80, 0x01},
}

func TestFullDepthRoundTrip(t *testing.T) {
	for _, f := range []Format{BGRA8888, RGBA8888} {
		for _, s := range samples {
			r, g, b, a := f.Decode(f.Encode(s[0], s[1], s[2], s[3]))
			assert.Equal(t, s, [4]uint8{r, g, b, a}, "format %s", f.Name())
		}
	}
}

func TestPadFormatDropsAlpha(t *testing.T) {
	for _, s := range samples {
		r, g, b, a := XRGB8888.Decode(XRGB8888.Encode(s[0], s[1], s[2], s[3]))
		assert.Equal(t, [3]uint8{s[0], s[1], s[2]}, [3]uint8{r, g, b})
		assert.Equal(t, uint8(0xff), a)
	}
	assert.Equal(t, Pixel(0), XRGB8888.Encode(0, 0, 0, 0xff)&0xff000000)
}

func TestRGB565Truncates(t *testing.T) {
	for _, s := range samples {
		p := RGB565.Encode(s[0], s[1], s[2], s[3])
		assert.Less(t, uint32(p), uint32(1<<16))
		r, g, b, a := RGB565.Decode(p)
		assert.Equal(t, s[0]&0xf8, r)
		assert.Equal(t, s[1]&0xfc, g)
		assert.Equal(t, s[2]&0xf8, b)
		assert.Equal(t, uint8(0xff), a)
	}
	assert.Equal(t, Pixel(0xf800), RGB565.Encode(255, 0, 0, 0))
	assert.Equal(t, Pixel(0x07e0), RGB565.Encode(0, 255, 0, 0))
	assert.Equal(t, Pixel(0x001f), RGB565.Encode(0, 0, 255, 0))
}

func TestBGRAByteOrder(t *testing.T) {
	p := BGRA8888.Encode(0x11, 0x22, 0x33, 0x44)
	assert.Equal(t, Pixel(0x44112233), p)
	p = RGBA8888.Encode(0x11, 0x22, 0x33, 0x44)
	assert.Equal(t, Pixel(0x11223344), p)
}

func TestBlend(t *testing.T) {
	bg := BGRA8888.Encode(0, 0, 0xa8, 0)
	fg := BGRA8888.Encode(0xa8, 0xa8, 0xa8, 0xff)
	assert.Equal(t, bg, Blend(BGRA8888, bg, fg, 0))
	assert.Equal(t, fg, Blend(BGRA8888, bg, fg, 255))
	r, g, b, a := BGRA8888.Decode(Blend(BGRA8888, bg, fg, 128))
	assert.InDelta(t, 0xa8/2, int(r), 1)
	assert.InDelta(t, 0xa8/2, int(g), 1)
	assert.Equal(t, uint8(0xa8), b)
	assert.InDelta(t, 0xff/2, int(a), 1)
	// falling interpolation truncates towards the background
	assert.Equal(t, uint8(128), lerp(255, 0, 128))
}

func TestLookup(t *testing.T) {
	f, err := Lookup("rgb565")
	assert.NoError(t, err)
	assert.Equal(t, 2, f.Size())
	_, err = Lookup("YUV422")
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Len(t, Formats(), 4)
}

func TestNewLayoutValidates(t *testing.T) {
	_, err := NewLayout("bad", 3, Channel{}, Channel{}, Channel{}, Channel{})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = NewLayout("bad", 2, Channel{12, 5}, Channel{}, Channel{}, Channel{})
	assert.Equal(t, core.EINVALID, core.Code(err))
	l, err := NewLayout("RGB555", 2, Channel{10, 5}, Channel{5, 5}, Channel{0, 5}, Channel{})
	assert.NoError(t, err)
	r, g, b, _ := l.Decode(l.Encode(0xff, 0x80, 0x07, 0))
	assert.Equal(t, [3]uint8{0xf8, 0x80, 0x00}, [3]uint8{r, g, b})
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "BGRA8888(1,2,3,4)", Describe(BGRA8888, BGRA8888.Encode(1, 2, 3, 4)))
	assert.Equal(t, "RGB565(248,0,0,255)", Describe(RGB565, 0xf800))
}
