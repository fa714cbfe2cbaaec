/*
Package term implements a text terminal on top of a framebuffer.

A Terminal owns a cursor, a record of the text on screen and a pending
damage rectangle. Characters are rasterized into the framebuffer's draw
target; Flush ships the damaged area to the hardware-visible buffer.
Print and Write flush implicitly.

Control characters

Only four control characters are interpreted: newline, carriage return,
tab and backspace. There is no escape sequence handling.

Newline always moves the cursor to the start of the next line. Carriage
return moves the cursor to the start of the current line and forgets the
line's text, but does not erase pixels already drawn; subsequent output
overdraws them. Backspace removes the last character of the current line
only and never moves to a previous line.

Concurrency

A Terminal must not be used by more than one goroutine at a time. It may
be handed from one goroutine to another. Guarded serializes access for
clients which need to share a terminal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package term

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fbterm.term'.
func tracer() tracing.Trace {
	return tracing.Select("fbterm.term")
}
