/*
Package outline renders TrueType and OpenType fonts for the terminal.

Glyph outlines are rasterized with golang.org/x/image into 8-bit coverage
bitmaps. Rendering is comparatively expensive, therefore glyphs are cached.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package outline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fbterm.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("fbterm.fonts")
}
