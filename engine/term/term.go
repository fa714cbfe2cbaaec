package term

import (
	"io"

	"github.com/npillmayer/fbterm/backend/framebuffer"
	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/font"
)

// TabWidth is the number of blanks a tab character is expanded to.
const TabWidth = 4

// Terminal renders text into a framebuffer.
//
// The cursor position (x, y) is the top left corner of the cell the next
// character goes to. x never exceeds the framebuffer width, and y never
// exceeds the last position a full line fits at; when a new line would not
// fit, the screen scrolls.
type Terminal struct {
	fb      *framebuffer.Framebuffer
	font    font.Font
	x, y    saturating
	dirty   framebuffer.Rect
	damaged bool
	lines   *lineBuffer
}

var (
	_ io.Writer       = (*Terminal)(nil)
	_ io.StringWriter = (*Terminal)(nil)
)

// New creates a terminal drawing to fb with font f. The cursor starts at
// the top left corner. New does not touch the framebuffer's contents.
func New(fb *framebuffer.Framebuffer, f font.Font) *Terminal {
	core.Assert(fb != nil, "terminal needs a framebuffer")
	core.Assert(f != nil, "terminal needs a font")
	lh := f.LineHeight()
	core.Assert(lh > 0, "font line height must be positive, is %d", lh)
	t := &Terminal{
		fb:    fb,
		font:  f,
		x:     newSaturating(fb.Width()),
		y:     newSaturating(max(fb.Height()-lh, 0)),
		lines: newLineBuffer(),
	}
	tracer().Debugf("terminal %dx%d with line height %d", fb.Width(), fb.Height(), lh)
	return t
}

// Font returns the font the terminal renders with.
func (t *Terminal) Font() font.Font { return t.font }

// Framebuffer returns the framebuffer the terminal draws to.
func (t *Terminal) Framebuffer() *framebuffer.Framebuffer { return t.fb }

// Width returns the width of the terminal in pixels.
func (t *Terminal) Width() int { return t.fb.Width() }

// Height returns the height of the terminal in pixels.
func (t *Terminal) Height() int { return t.fb.Height() }

// Cursor returns the cursor position in pixels.
func (t *Terminal) Cursor() (x, y int) {
	return t.x.val, t.y.val
}

// Dirty returns the area drawn to since the last flush. The boolean result
// is false if nothing has been drawn.
func (t *Terminal) Dirty() (framebuffer.Rect, bool) {
	return t.dirty, t.damaged
}

// Lines returns the text of the lines on screen, top to bottom. The last
// entry is the line the cursor is on.
func (t *Terminal) Lines() []string {
	return t.lines.strings()
}

// Putc writes a single character. It does not flush.
func (t *Terminal) Putc(r rune) {
	switch r {
	case '\n':
		t.newline()
	case '\r':
		t.x.set(0)
		t.lines.current().clear()
	case '\t':
		for i := 0; i < TabWidth; i++ {
			t.Putc(' ')
		}
		t.Flush()
	case '\b':
		t.backspace()
	default:
		t.printable(r)
	}
}

// Print writes every character of s, then flushes.
func (t *Terminal) Print(s string) {
	for _, r := range s {
		t.Putc(r)
	}
	t.Flush()
}

// Write prints p, interpreted as UTF-8. It never fails.
func (t *Terminal) Write(p []byte) (int, error) {
	t.Print(string(p))
	return len(p), nil
}

// WriteString prints s. It never fails.
func (t *Terminal) WriteString(s string) (int, error) {
	t.Print(s)
	return len(s), nil
}

// Flush copies the area drawn to since the last flush to the
// hardware-visible buffer.
func (t *Terminal) Flush() {
	if !t.damaged {
		return
	}
	area := t.dirty
	t.fb.Flush(&area)
	t.damaged = false
}

// Clear erases the screen, moves the cursor home and forgets all text.
// The whole framebuffer is flushed.
func (t *Terminal) Clear() {
	t.x.set(0)
	t.y.set(0)
	t.fb.Clear()
	t.fb.Flush(nil)
	t.damaged = false
	t.lines.reset()
	tracer().Debugf("terminal cleared")
}

// ChangeFont clears the screen and returns a new terminal on the same
// framebuffer, using font f. The text of all lines on screen is printed
// again with the new font. t must not be used afterwards.
func (t *Terminal) ChangeFont(f font.Font) *Terminal {
	lines := t.Lines()
	t.Clear()
	nt := New(t.fb, f)
	tracer().Infof("changing font to %v, replaying %d lines", f, len(lines))
	for _, l := range lines {
		nt.Print(l)
		nt.Putc('\n')
	}
	nt.Flush()
	return nt
}

func (t *Terminal) newline() {
	t.x.set(0)
	t.lineFeed()
}

// lineFeed moves the cursor down one line, scrolling if the new line would
// not fit on screen.
func (t *Terminal) lineFeed() {
	next, overflow := t.y.peek(t.font.LineHeight())
	if overflow {
		t.scroll(next - t.y.max)
	}
	t.y.set(next)
	t.lines.push()
}

func (t *Terminal) printable(r rune) {
	r, g := font.GlyphOrBlank(t.font, r)
	next, overflow := t.x.peek(g.Advance)
	if overflow && t.x.val > 0 {
		t.x.set(0)
		t.lineFeed()
		next = g.Advance
	}
	t.lines.current().append(r)
	t.drawGlyph(g)
	t.x.set(next)
}

func (t *Terminal) backspace() {
	r, ok := t.lines.current().pop()
	if !ok {
		return
	}
	_, g := font.GlyphOrBlank(t.font, r)
	t.x.sub(g.Advance)
	if box, ok := t.glyphBox(g); ok {
		t.fb.DrawRect(box, t.fb.Background())
		t.addDirty(box)
	}
}

// glyphBox is the area g occupies at the cursor, clipped to the screen.
func (t *Terminal) glyphBox(g *font.Glyph) (framebuffer.Rect, bool) {
	if g.Empty() {
		return framebuffer.Rect{}, false
	}
	box := framebuffer.Rect{X: t.x.val + g.X, Y: t.y.val + g.Y, W: g.Width, H: g.Height}
	return box.Intersect(t.fb.Bounds())
}

func (t *Terminal) drawGlyph(g *font.Glyph) {
	clip, ok := t.glyphBox(g)
	if !ok {
		return
	}
	ox, oy := t.x.val+g.X, t.y.val+g.Y
	for y := clip.Top(); y <= clip.Bottom(); y++ {
		for x := clip.Left(); x <= clip.Right(); x++ {
			s := t.font.Sample(g, x-ox, y-oy)
			switch s.Mode {
			case font.Bit:
				t.fb.DrawBit(x, y, s.Value != 0)
			case font.Coverage:
				t.fb.DrawAlpha(x, y, s.Value)
			}
		}
	}
	t.addDirty(clip)
}

// scroll moves the screen content up by n rows and blanks the rows
// exposed at the bottom. The whole screen becomes dirty.
func (t *Terminal) scroll(n int) {
	w, h := t.fb.Width(), t.fb.Height()
	tracer().Debugf("scroll by %d rows", n)
	if n >= h {
		t.fb.DrawRect(t.fb.Bounds(), t.fb.Background())
	} else {
		t.fb.CopyRect(framebuffer.R(0, n, w, h-n), framebuffer.R(0, 0, w, h-n))
		t.fb.DrawRect(framebuffer.R(0, h-n, w, n), t.fb.Background())
	}
	t.y.sub(n)
	t.addDirty(t.fb.Bounds())
	t.lines.dropOldest()
}

func (t *Terminal) addDirty(r framebuffer.Rect) {
	if !t.damaged {
		t.dirty, t.damaged = r, true
		return
	}
	t.dirty = t.dirty.Union(r)
}
