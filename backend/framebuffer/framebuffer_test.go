package framebuffer

import (
	"encoding/binary"
	"image/color"
	"testing"

	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/mmio"
	"github.com/npillmayer/fbterm/core/pixel"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bg = pixel.BGRA8888.Encode(0, 0, 0xa8, 0)
	fg = pixel.BGRA8888.Encode(0xa8, 0xa8, 0xa8, 0xff)
)

func newFB(w, h, stride int, f pixel.Format) *Framebuffer {
	mem := mmio.Alloc(stride * h * f.Size())
	return New(mem, w, h, stride, f, f.Encode(0, 0, 0xa8, 0), f.Encode(0xa8, 0xa8, 0xa8, 0xff))
}

func assertContract(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if assert.True(t, ok, "expected a contract panic, got %v", r) {
			assert.Equal(t, core.ECONTRACT, core.Code(err))
		}
	}()
	f()
}

func TestClearFillsStride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	mem := mmio.Alloc(12 * 4 * 4)
	fb := New(mem, 10, 4, 12, pixel.BGRA8888, bg, fg)
	assert.Equal(t, 12, fb.Stride())
	fb.Clear()
	r := mmio.NewRegion(mem)
	for off := 0; off < len(mem); off += 4 {
		assert.Equal(t, uint32(bg), r.Load32(off), "offset %d", off)
	}
}

func TestPixelIO(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	for _, f := range pixel.Formats() {
		fb := newFB(5, 3, 6, f)
		fb.Clear()
		p := f.Encode(1, 2, 3, 4)
		fb.DrawPixel(4, 2, p)
		assert.Equal(t, p, fb.Pixel(4, 2), f.Name())
		assert.Equal(t, fb.Background(), fb.Pixel(3, 2), f.Name())
		assert.Equal(t, fb.Background(), fb.Pixel(4, 1), f.Name())
	}
}

func TestPixelBytesInMemory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	if binary.NativeEndian.Uint16([]byte{1, 0}) != 1 {
		t.Skip("packed pixel layouts describe little-endian memory")
	}
	region := mmio.NewRegion(mmio.Alloc(2 * 4))
	fb := New(region.Bytes(), 2, 1, 2, pixel.BGRA8888, bg, fg)
	fb.Clear()
	fb.DrawPixel(1, 0, pixel.BGRA8888.Encode(0x11, 0x22, 0x33, 0x44))
	assert.Equal(t, []byte{0x33, 0x22, 0x11, 0x44}, region.Bytes()[4:8], "B, G, R, A")
	assert.Equal(t, []byte{0xa8, 0x00, 0x00, 0x00}, region.Bytes()[0:4])
	//
	region = mmio.NewRegion(mmio.Alloc(2 * 2))
	fb = New(region.Bytes(), 2, 1, 2, pixel.RGB565, 0, 0xffff)
	fb.DrawPixel(1, 0, pixel.RGB565.Encode(0xff, 0, 0, 0))
	assert.Equal(t, []byte{0x00, 0xf8}, region.Bytes()[2:4])
}

func TestExactSizeOddRGB565(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	mem := mmio.Alloc(8)
	mem[6], mem[7] = 0x77, 0x77
	back, red := pixel.RGB565.Encode(0, 0, 0xa8, 0), pixel.RGB565.Encode(0xff, 0, 0, 0)
	fb := New(mem[:6], 3, 1, 3, pixel.RGB565, back, red)
	fb.Clear()
	fb.DrawBit(2, 0, true)
	assert.Equal(t, red, fb.Pixel(2, 0))
	assert.Equal(t, back, fb.Pixel(1, 0))
	assert.Equal(t, []byte{0x77, 0x77}, mem[6:8])
	fb.SetDoubleBuffer(mmio.Alloc(8)[:6])
	fb.Clear()
	fb.DrawBit(0, 0, true)
	fb.Flush(nil)
	assert.Equal(t, red, fb.VisiblePixel(0, 0))
	assert.Equal(t, back, fb.VisiblePixel(2, 0))
}

func TestOutOfBoundsIsFatal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	fb := newFB(4, 4, 4, pixel.BGRA8888)
	assertContract(t, func() { fb.DrawPixel(4, 0, fg) })
	assertContract(t, func() { fb.Pixel(0, -1) })
	assertContract(t, func() { fb.DrawRect(Rect{X: 2, Y: 2, W: 3, H: 1}, fg) })
	assertContract(t, func() { New(mmio.Alloc(16), 4, 4, 4, pixel.BGRA8888, bg, fg) })
	assertContract(t, func() { New(mmio.Alloc(64), 4, 4, 3, pixel.BGRA8888, bg, fg) })
}

func TestDrawRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	fb := newFB(8, 8, 8, pixel.RGB565)
	fb.Clear()
	red := fb.Color(color.RGBA{R: 0xff, A: 0xff})
	fb.DrawRect(R(2, 3, 4, 2), red)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x >= 2 && x <= 5 && y >= 3 && y <= 4 {
				assert.Equal(t, red, fb.Pixel(x, y))
			} else {
				assert.Equal(t, fb.Background(), fb.Pixel(x, y))
			}
		}
	}
}

func TestCopyRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	fb := newFB(4, 6, 4, pixel.BGRA8888)
	for y := 0; y < 6; y++ {
		for x := 0; x < 4; x++ {
			fb.DrawPixel(x, y, pixel.Pixel(y*10+x))
		}
	}
	// scroll-like copy: overlapping, destination above source
	fb.CopyRect(R(0, 2, 4, 4), R(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, pixel.Pixel((y+2)*10+x), fb.Pixel(x, y))
		}
	}
}

func TestCopyRectPreconditions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	fb := newFB(8, 8, 8, pixel.BGRA8888)
	// same top row
	assertContract(t, func() { fb.CopyRect(R(0, 1, 2, 2), R(1, 1, 2, 2)) })
	assertContract(t, func() { fb.CopyRect(R(0, 1, 2, 2), R(4, 1, 2, 2)) })
	// overlapping, destination below source
	assertContract(t, func() { fb.CopyRect(R(0, 0, 4, 4), R(0, 2, 4, 4)) })
	// mismatched dimensions
	assertContract(t, func() { fb.CopyRect(R(0, 0, 2, 2), R(0, 4, 3, 2)) })
	// out of bounds
	assertContract(t, func() { fb.CopyRect(R(0, 0, 2, 2), R(7, 4, 2, 2)) })
	// disjoint, destination below: fine
	assert.NotPanics(t, func() { fb.CopyRect(R(0, 0, 2, 2), R(0, 4, 2, 2)) })
}

func TestDrawBitAndAlpha(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	fb := newFB(4, 1, 4, pixel.BGRA8888)
	fb.DrawBit(0, 0, true)
	fb.DrawBit(1, 0, false)
	fb.DrawAlpha(2, 0, 0)
	fb.DrawAlpha(3, 0, 255)
	assert.Equal(t, fg, fb.Pixel(0, 0))
	assert.Equal(t, bg, fb.Pixel(1, 0))
	assert.Equal(t, bg, fb.Pixel(2, 0))
	assert.Equal(t, fg, fb.Pixel(3, 0))
	fb.DrawAlpha(1, 0, 128)
	r, g, b, a := pixel.BGRA8888.Decode(fb.Pixel(1, 0))
	assert.InDelta(t, 0x54, int(r), 1)
	assert.InDelta(t, 0x54, int(g), 1)
	assert.Equal(t, uint8(0xa8), b)
	assert.InDelta(t, 0x7f, int(a), 1)
}

func TestColorsAreMutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	fb := newFB(2, 2, 2, pixel.XRGB8888)
	white := fb.Color(color.White)
	fb.SetBackground(white)
	fb.Clear()
	assert.Equal(t, white, fb.Pixel(1, 1))
	fb.SetForeground(fb.Color(color.Black))
	fb.DrawBit(0, 0, true)
	assert.Equal(t, fb.Foreground(), fb.Pixel(0, 0))
}

func TestDoubleBufferFlushesOnlyRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	visible := mmio.Alloc(6 * 4 * 4)
	fb := New(visible, 5, 4, 6, pixel.BGRA8888, bg, fg)
	fb.Clear()
	fb.SetDoubleBuffer(mmio.Alloc(6 * 4 * 4))
	require.True(t, fb.DoubleBuffered())
	fb.Clear()
	fb.DrawRect(R(0, 0, 5, 4), fg)
	// nothing reaches the visible buffer before a flush
	assert.Equal(t, bg, fb.VisiblePixel(2, 2))
	assert.Equal(t, fg, fb.Pixel(2, 2))
	area := R(1, 1, 2, 2)
	fb.Flush(&area)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if area.Contains(x, y) {
				assert.Equal(t, fg, fb.VisiblePixel(x, y))
			} else {
				assert.Equal(t, bg, fb.VisiblePixel(x, y))
			}
		}
	}
	fb.Flush(nil)
	assert.Equal(t, fg, fb.VisiblePixel(4, 3))
}

func TestFlushWithoutWorkBufferIsNoOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	fb := newFB(2, 2, 2, pixel.BGRA8888)
	fb.DrawPixel(0, 0, fg)
	assert.NotPanics(t, func() { fb.Flush(nil) })
	assert.Equal(t, fg, fb.VisiblePixel(0, 0))
}

func TestSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.framebuffer")
	defer teardown()
	//
	fb := newFB(3, 2, 4, pixel.RGB565)
	fb.Clear()
	fb.DrawPixel(2, 1, fb.Color(color.White))
	img := fb.Snapshot()
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{0xf8, 0xfc, 0xf8, 0xff}, img.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{0, 0, 0xa8, 0xff}, img.RGBAAt(0, 0))
}

func TestRect(t *testing.T) {
	a := R(0, 0, 2, 2)
	b := R(5, 3, 1, 4)
	u := a.Union(b)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 6, H: 7}, u)
	assert.Equal(t, 5, u.Right())
	assert.Equal(t, 6, u.Bottom())
	assert.False(t, a.Overlaps(b))
	assert.True(t, u.Overlaps(b))
	c, ok := R(-2, -2, 4, 4).Intersect(R(0, 0, 10, 10))
	assert.True(t, ok)
	assert.Equal(t, Rect{W: 2, H: 2}, c)
	_, ok = a.Intersect(b)
	assert.False(t, ok)
	assertContract(t, func() { R(0, 0, 0, 1) })
}
