/*
Package framebuffer implements a bounded, optionally double-buffered view
onto raw pixel memory.

All coordinate based operations require 0 ≤ x < width and 0 ≤ y < height.
Violations are contract breaches and panic with a core.ECONTRACT error;
there is no recoverable error path for corrupted geometry.

Memory access goes through package mmio, so stores to a hardware-visible
buffer are never elided or reordered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framebuffer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fbterm.framebuffer'.
func tracer() tracing.Trace {
	return tracing.Select("fbterm.framebuffer")
}
