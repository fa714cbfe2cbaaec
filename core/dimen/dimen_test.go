package dimen

import (
	"testing"

	"github.com/npillmayer/fbterm/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.core")
	defer teardown()
	//
	d, err := ParseDimen("12px")
	require.NoError(t, err)
	assert.Equal(t, 12*BP, d)
	//
	d, err = ParseDimen("16")
	require.NoError(t, err)
	assert.Equal(t, 16.0, d.Pixels(DefaultDPI))
	//
	d, err = ParseDimen("10.5pt")
	require.NoError(t, err)
	assert.InDelta(t, 10.5*72/72.27, d.Points(), 0.001)
	assert.InDelta(t, 10.5*96/72.27, d.Pixels(96), 0.001)
	//
	d, err = ParseDimen("1in")
	require.NoError(t, err)
	assert.Equal(t, 96.0, d.Pixels(96))
}

func TestParseDimenErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fbterm.core")
	defer teardown()
	//
	for _, s := range []string{"", "pt", "12 pt", "12em", "20%", "99999999in"} {
		_, err := ParseDimen(s)
		if assert.Error(t, err, s) {
			assert.Equal(t, core.EINVALID, core.Code(err), s)
		}
	}
	assert.Equal(t, PT, Min(PT, BP))
	assert.Equal(t, BP, Max(PT, BP))
}
