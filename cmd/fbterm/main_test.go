package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/dimen"
	"github.com/npillmayer/fbterm/core/font/bitmap"
	"github.com/npillmayer/fbterm/core/font/outline"
	"github.com/npillmayer/fbterm/engine/term"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntp(t *testing.T, out string) *Intp {
	fb, err := setupFramebuffer(160, 64, "RGB565", true)
	require.NoError(t, err)
	f, err := bitmap.Preset(bitmap.VGA8x16)
	require.NoError(t, err)
	tt := term.New(fb, f)
	tt.Clear()
	return &Intp{term: term.NewGuarded(tt), out: out, size: 12 * dimen.PX, dpi: dimen.DefaultDPI}
}

func TestSetupFramebuffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.cli")
	defer teardown()
	//
	_, err := setupFramebuffer(0, 10, "BGRA8888", false)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = setupFramebuffer(10, 10, "YUV", false)
	assert.Equal(t, core.EMISSING, core.Code(err))
	fb, err := setupFramebuffer(10, 10, "XRGB8888", true)
	require.NoError(t, err)
	assert.True(t, fb.DoubleBuffered())
	assert.Equal(t, fb.Color(background), fb.VisiblePixel(9, 9))
}

func TestExecute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.cli")
	defer teardown()
	//
	intp := newIntp(t, filepath.Join(t.TempDir(), "screen.png"))
	quit, err := intp.execute("hello")
	require.NoError(t, err)
	assert.False(t, quit)
	intp.term.Do(func(tt *term.Terminal) {
		assert.Equal(t, []string{"hello", ""}, tt.Lines())
	})
	_, err = intp.execute(":font vga8x8")
	require.NoError(t, err)
	intp.term.Do(func(tt *term.Terminal) {
		assert.Equal(t, 8, tt.Font().LineHeight())
		assert.Equal(t, "hello", tt.Lines()[0])
	})
	_, err = intp.execute(":font Go-Mono x")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = intp.execute(":font Go-Mono 9pt")
	require.NoError(t, err)
	intp.term.Do(func(tt *term.Terminal) {
		assert.Equal(t, "outline:go_mono@9.0", fmt.Sprint(tt.Font()))
	})
	intp.dpi = 2 * dimen.DefaultDPI
	_, err = intp.execute(":font Go-Mono 9pt")
	require.NoError(t, err)
	intp.term.Do(func(tt *term.Terminal) {
		mono, err := outline.GoMono(18)
		require.NoError(t, err)
		assert.Equal(t, mono.LineHeight(), tt.Font().LineHeight(), "9pt at 144 dpi is 18px")
	})
	_, err = intp.execute(":nonsense")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = intp.execute(":clear")
	require.NoError(t, err)
	intp.term.Do(func(tt *term.Terminal) {
		assert.Equal(t, []string{""}, tt.Lines())
	})
	quit, err = intp.execute(":quit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestShipout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.cli")
	defer teardown()
	//
	dir := t.TempDir()
	intp := newIntp(t, filepath.Join(dir, "screen.png"))
	intp.term.Do(showCharacters)
	require.NoError(t, intp.shipout())
	file, err := os.Open(intp.out)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
	//
	intp.out = filepath.Join(dir, "screen.bmp")
	require.NoError(t, intp.shipout())
	fi, err := os.Stat(intp.out)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(160*64*3))
}
