/*
Package fontregistry manages a registry for loaded outline fonts.

Outline fonts are registered once as raw font data under a normalized name.
Rasterizable instances are prepared per size on request and kept, so that
terminals sharing a font at the same size share its glyph cache.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fbterm.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fbterm.fonts")
}
