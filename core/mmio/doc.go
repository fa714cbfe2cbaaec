/*
Package mmio provides ordered access to memory shared with hardware.

Go has no volatile qualifier. Framebuffer memory may be scanned out by a
display controller or read by another core at any time, so plain loads and
stores, which the compiler is free to combine or drop, are not adequate.
A Region routes every access through sync/atomic word operations instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mmio

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fbterm.memory'.
func tracer() tracing.Trace {
	return tracing.Select("fbterm.memory")
}
