package term

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// lineBuffer records the text of the lines on screen, oldest first. It
// always holds at least one line, the one the cursor is on.
type lineBuffer struct {
	list *doublylinkedlist.List
}

type line struct {
	text []rune
}

func newLineBuffer() *lineBuffer {
	return &lineBuffer{list: doublylinkedlist.New(&line{})}
}

func (lb *lineBuffer) current() *line {
	l, _ := lb.list.Get(lb.list.Size() - 1)
	return l.(*line)
}

func (lb *lineBuffer) push() {
	lb.list.Add(&line{})
}

// dropOldest removes the topmost line, unless it is the only one.
func (lb *lineBuffer) dropOldest() {
	if lb.list.Size() > 1 {
		lb.list.Remove(0)
	} else {
		lb.current().text = nil
	}
}

func (lb *lineBuffer) reset() {
	lb.list.Clear()
	lb.list.Add(&line{})
}

func (lb *lineBuffer) strings() []string {
	s := make([]string, 0, lb.list.Size())
	lb.list.Each(func(_ int, v interface{}) {
		s = append(s, string(v.(*line).text))
	})
	return s
}

func (l *line) append(r rune) {
	l.text = append(l.text, r)
}

// pop removes the last character of l.
func (l *line) pop() (rune, bool) {
	if len(l.text) == 0 {
		return 0, false
	}
	r := l.text[len(l.text)-1]
	l.text = l.text[:len(l.text)-1]
	return r, true
}

func (l *line) clear() {
	l.text = l.text[:0]
}
