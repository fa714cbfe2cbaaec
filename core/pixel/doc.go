/*
Package pixel implements the pixel-format codecs of fbterm.

A Format converts between (r,g,b,a) colors and the fixed-width native value
stored in framebuffer memory. All built-in formats are instances of one
packed Layout, parameterized by channel position and bit depth. Full-depth
formats round-trip exactly; reduced-depth formats like RGB565 truncate each
channel to its available bits.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pixel
