package framebuffer

import (
	"image"
	"image/color"

	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/mmio"
	"github.com/npillmayer/fbterm/core/pixel"
)

// Framebuffer is a bounded, rectangle-oriented view onto raw pixel memory.
//
// The memory handed to New is the hardware-visible buffer. After
// SetDoubleBuffer all drawing goes to a work buffer instead, and Flush copies
// damaged rectangles to the visible buffer.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	visible    mmio.Region
	work       mmio.Region
	buffered   bool
	width      int
	height     int
	stride     int // in pixels
	format     pixel.Format
	psize      int
	background pixel.Pixel
	foreground pixel.Pixel
}

// New creates a framebuffer on top of mem, which must hold at least
// stride × height pixels of the given format. Width, height and stride are in
// pixels, and stride must not be smaller than width. mem must be word
// aligned; mmio.Alloc returns such memory.
//
// The caller guarantees that mem remains valid for the lifetime of the
// framebuffer. Violated preconditions panic.
func New(mem []byte, width, height, stride int, format pixel.Format,
	background, foreground pixel.Pixel) *Framebuffer {
	//
	core.Assert(format != nil, "framebuffer needs a pixel format")
	core.Assert(width > 0 && height > 0, "framebuffer size must be positive, is %dx%d", width, height)
	core.Assert(stride >= width, "stride %d is smaller than width %d", stride, width)
	psize := format.Size()
	core.Assert(psize == 2 || psize == 4, "unsupported pixel size %d", psize)
	need := stride * height * psize
	core.Assert(len(mem) >= need, "framebuffer memory has %d bytes, needs %d", len(mem), need)
	fb := &Framebuffer{
		visible:    mmio.NewRegion(mem),
		width:      width,
		height:     height,
		stride:     stride,
		format:     format,
		psize:      psize,
		background: background,
		foreground: foreground,
	}
	tracer().Infof("framebuffer %dx%d (stride %d), background %s, foreground %s", width, height, stride,
		pixel.Describe(format, background), pixel.Describe(format, foreground))
	return fb
}

// SetDoubleBuffer designates work as the buffer all subsequent drawing goes
// to. The memory passed to New becomes the hardware-visible buffer, updated
// only by Flush. work has the same size requirements and lifetime guarantee
// as the memory passed to New.
func (fb *Framebuffer) SetDoubleBuffer(work []byte) {
	need := fb.stride * fb.height * fb.psize
	core.Assert(len(work) >= need, "work buffer has %d bytes, needs %d", len(work), need)
	fb.work = mmio.NewRegion(work)
	fb.buffered = true
	tracer().Debugf("framebuffer is double buffered")
}

// DoubleBuffered is true if drawing goes to a work buffer.
func (fb *Framebuffer) DoubleBuffered() bool {
	return fb.buffered
}

// Width returns the visible width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the visible height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Stride returns the number of pixels per memory row.
func (fb *Framebuffer) Stride() int { return fb.stride }

// Format returns the pixel format of the framebuffer.
func (fb *Framebuffer) Format() pixel.Format { return fb.format }

// Bounds returns the rectangle covering the whole visible area.
func (fb *Framebuffer) Bounds() Rect {
	return Rect{W: fb.width, H: fb.height}
}

// Foreground returns the current foreground pixel.
func (fb *Framebuffer) Foreground() pixel.Pixel { return fb.foreground }

// SetForeground sets the pixel used for set bits and full coverage.
func (fb *Framebuffer) SetForeground(p pixel.Pixel) { fb.foreground = p }

// Background returns the current background pixel.
func (fb *Framebuffer) Background() pixel.Pixel { return fb.background }

// SetBackground sets the pixel used by Clear, unset bits and zero coverage.
func (fb *Framebuffer) SetBackground(p pixel.Pixel) { fb.background = p }

// Color encodes a standard library color in the framebuffer's format.
func (fb *Framebuffer) Color(c color.Color) pixel.Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fb.format.Encode(n.R, n.G, n.B, n.A)
}

func (fb *Framebuffer) target() mmio.Region {
	if fb.buffered {
		return fb.work
	}
	return fb.visible
}

func (fb *Framebuffer) offset(x, y int) int {
	return (y*fb.stride + x) * fb.psize
}

func (fb *Framebuffer) checkPoint(x, y int) {
	core.Assert(x >= 0 && x < fb.width && y >= 0 && y < fb.height,
		"framebuffer accessed out of bounds at (%d,%d), size is %dx%d", x, y, fb.width, fb.height)
}

func (fb *Framebuffer) checkRect(r Rect) {
	core.Assert(r.W > 0 && r.H > 0, "rectangle %v is empty", r)
	core.Assert(r.Left() >= 0 && r.Top() >= 0 && r.Right() < fb.width && r.Bottom() < fb.height,
		"rectangle %v exceeds framebuffer %dx%d", r, fb.width, fb.height)
}

// Clear fills every addressable pixel, including the padding between width
// and stride, with the background.
func (fb *Framebuffer) Clear() {
	mem := fb.target()
	bg := uint32(fb.background)
	for off := 0; off < fb.stride*fb.height*fb.psize; off += fb.psize {
		mem.Store(off, fb.psize, bg)
	}
}

// Pixel reads the pixel at (x, y) from the buffer drawing goes to.
func (fb *Framebuffer) Pixel(x, y int) pixel.Pixel {
	fb.checkPoint(x, y)
	return pixel.Pixel(fb.target().Load(fb.offset(x, y), fb.psize))
}

// VisiblePixel reads the pixel at (x, y) from the hardware-visible buffer.
func (fb *Framebuffer) VisiblePixel(x, y int) pixel.Pixel {
	fb.checkPoint(x, y)
	return pixel.Pixel(fb.visible.Load(fb.offset(x, y), fb.psize))
}

// DrawPixel sets the pixel at (x, y).
func (fb *Framebuffer) DrawPixel(x, y int, p pixel.Pixel) {
	fb.checkPoint(x, y)
	fb.target().Store(fb.offset(x, y), fb.psize, uint32(p))
}

// DrawRect fills r with p. r must lie within the framebuffer.
func (fb *Framebuffer) DrawRect(r Rect, p pixel.Pixel) {
	fb.checkRect(r)
	mem := fb.target()
	for y := r.Top(); y <= r.Bottom(); y++ {
		off := fb.offset(r.X, y)
		for x := 0; x < r.W; x++ {
			mem.Store(off, fb.psize, uint32(p))
			off += fb.psize
		}
	}
}

// CopyRect copies the pixels of src to dst, row by row from the top.
//
// Both rectangles must lie within the framebuffer and have identical
// dimensions. Rectangles starting on the same row are rejected, as are
// overlapping rectangles where dst is not above src: in both cases a
// forward copy would read pixels it has already overwritten.
func (fb *Framebuffer) CopyRect(src, dst Rect) {
	fb.checkRect(src)
	fb.checkRect(dst)
	core.Assert(src.W == dst.W && src.H == dst.H, "copy from %v to %v with different dimensions", src, dst)
	core.Assert(src.Top() != dst.Top(), "copy from %v to %v within the same rows", src, dst)
	core.Assert(!src.Overlaps(dst) || dst.Top() < src.Top(),
		"copy from %v to %v overlaps in copy direction", src, dst)
	mem := fb.target()
	for y := 0; y < src.H; y++ {
		from := fb.offset(src.X, src.Y+y)
		to := fb.offset(dst.X, dst.Y+y)
		for x := 0; x < src.W; x++ {
			mem.Store(to, fb.psize, mem.Load(from, fb.psize))
			from += fb.psize
			to += fb.psize
		}
	}
}

// DrawBit stamps the foreground at (x, y) if bit is set, the background
// otherwise.
func (fb *Framebuffer) DrawBit(x, y int, bit bool) {
	if bit {
		fb.DrawPixel(x, y, fb.foreground)
	} else {
		fb.DrawPixel(x, y, fb.background)
	}
}

// DrawAlpha blends foreground over background with the given coverage and
// stores the result at (x, y). Coverage 0 yields the background, 255 the
// foreground.
func (fb *Framebuffer) DrawAlpha(x, y int, coverage uint8) {
	fb.DrawPixel(x, y, pixel.Blend(fb.format, fb.background, fb.foreground, coverage))
}

// Flush copies r from the work buffer to the hardware-visible buffer. A nil
// rectangle flushes the whole framebuffer. Without a work buffer Flush does
// nothing.
func (fb *Framebuffer) Flush(r *Rect) {
	if !fb.buffered {
		return
	}
	area := fb.Bounds()
	if r != nil {
		area = *r
	}
	fb.checkRect(area)
	tracer().Debugf("flush %v", area)
	for y := area.Top(); y <= area.Bottom(); y++ {
		off := fb.offset(area.X, y)
		for x := 0; x < area.W; x++ {
			fb.visible.Store(off, fb.psize, fb.work.Load(off, fb.psize))
			off += fb.psize
		}
	}
}

// Snapshot decodes the hardware-visible buffer into an image. Alpha is
// ignored, as display scan-out is opaque.
func (fb *Framebuffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r, g, b, _ := fb.format.Decode(fb.VisiblePixel(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}
