package resources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/fbterm/core/font/bitmap"
	"github.com/npillmayer/fbterm/core/font/outline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
)

func TestResolvePreset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.resources")
	defer teardown()
	//
	f, err := ResolveFont("vga8x14", 0, 0).Font()
	require.NoError(t, err)
	assert.IsType(t, &bitmap.Font{}, f)
	assert.Equal(t, 14, f.LineHeight())
}

func TestResolveRegisteredFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.resources")
	defer teardown()
	//
	f, err := ResolveFont("Go Mono", 14, 72).Font()
	require.NoError(t, err)
	assert.IsType(t, &outline.Font{}, f)
}

func TestResolveFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.resources")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "MyMono.ttf")
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0o644))
	f, err := ResolveFont(path, 10, 72).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10.0, f.(*outline.Font).Size())
}

func TestResolveMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.resources")
	defer teardown()
	//
	_, err := ResolveFont("no-such-font-anywhere-42", 12, 72).Font()
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestResolveCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.resources")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	promise := ResolveFont("vga8x16", 0, 0)
	f, err := promise.Await(ctx)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, f)
	}
}
