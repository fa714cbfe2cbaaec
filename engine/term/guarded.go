package term

import (
	"sync"

	"github.com/npillmayer/fbterm/core/font"
)

// Guarded serializes access to a Terminal shared between goroutines.
type Guarded struct {
	mx   sync.Mutex
	term *Terminal
}

// NewGuarded takes ownership of t. Clients must not use t directly
// afterwards.
func NewGuarded(t *Terminal) *Guarded {
	return &Guarded{term: t}
}

// Do calls f with exclusive access to the terminal. f must not retain the
// terminal.
func (g *Guarded) Do(f func(*Terminal)) {
	g.mx.Lock()
	defer g.mx.Unlock()
	f(g.term)
}

// Print prints s atomically with respect to other clients.
func (g *Guarded) Print(s string) {
	g.Do(func(t *Terminal) { t.Print(s) })
}

// Write prints p atomically with respect to other clients.
func (g *Guarded) Write(p []byte) (n int, err error) {
	g.Do(func(t *Terminal) { n, err = t.Write(p) })
	return
}

// Swap changes the terminal's font.
func (g *Guarded) Swap(f font.Font) {
	g.mx.Lock()
	defer g.mx.Unlock()
	g.term = g.term.ChangeFont(f)
}
