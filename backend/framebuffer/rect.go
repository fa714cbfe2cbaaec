package framebuffer

import (
	"fmt"

	"github.com/npillmayer/fbterm/core"
)

// Rect is a rectangle of pixels. Width and height are always positive.
type Rect struct {
	X, Y int
	W, H int
}

// R creates a rectangle. w and h must be positive; violations panic.
func R(x, y, w, h int) Rect {
	core.Assert(w > 0 && h > 0, "rectangle must have positive size, is %dx%d", w, h)
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the leftmost column of r.
func (r Rect) Left() int { return r.X }

// Top returns the topmost row of r.
func (r Rect) Top() int { return r.Y }

// Right returns the rightmost column of r, inclusive.
func (r Rect) Right() int { return r.X + r.W - 1 }

// Bottom returns the bottom row of r, inclusive.
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	x := min(r.Left(), s.Left())
	y := min(r.Top(), s.Top())
	right := max(r.Right(), s.Right())
	bottom := max(r.Bottom(), s.Bottom())
	return Rect{X: x, Y: y, W: right - x + 1, H: bottom - y + 1}
}

// Overlaps is true if r and s share at least one pixel.
func (r Rect) Overlaps(s Rect) bool {
	return !(r.Right() < s.Left() || s.Right() < r.Left() ||
		r.Bottom() < s.Top() || s.Bottom() < r.Top())
}

// Contains is true if pixel (x, y) lies within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Intersect clips r to s. The boolean result is false if r and s do
// not overlap.
func (r Rect) Intersect(s Rect) (Rect, bool) {
	if !r.Overlaps(s) {
		return Rect{}, false
	}
	x := max(r.Left(), s.Left())
	y := max(r.Top(), s.Top())
	right := min(r.Right(), s.Right())
	bottom := min(r.Bottom(), s.Bottom())
	return Rect{X: x, Y: y, W: right - x + 1, H: bottom - y + 1}, true
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
