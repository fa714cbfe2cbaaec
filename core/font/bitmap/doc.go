/*
Package bitmap implements fixed-size bitmap fonts.

Every glyph is a cell of width × height bits. Besides caller-supplied
tables, a set of compiled-in fonts is available via Preset: the classic VGA
ROM font in three heights, addressed through code page 437, and the
fixed-size faces shipped with golang.org/x/image, addressed as Latin-1.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bitmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fbterm.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("fbterm.fonts")
}
