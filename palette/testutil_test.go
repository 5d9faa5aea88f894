package palette

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/palettekit/pkg/types"
)

// bpp4Colors returns a 16-color block unique to seed.
func bpp4Colors(seed int) []types.Color {
	out := make([]types.Color, types.BPP4Colors)
	for i := range out {
		out[i] = types.RGB(seed%32, (seed/32+i)%32, (31-i)%32)
	}
	return out
}

// bpp8Colors returns n colors unique to seed.
func bpp8Colors(n, seed int) []types.Color {
	out := make([]types.Color, n)
	for i := range out {
		out[i] = types.Color((i*37 + seed*101) & types.ColorMask)
	}
	return out
}

func newTestBank() *Bank {
	return NewBank(DefaultOptions(KindSprite))
}

func mustCreate(t *testing.T, b *Bank, colors []types.Color, bpp types.BPP) *Handle {
	t.Helper()
	h, err := b.Create(NewItem(colors, bpp))
	require.NoError(t, err)
	require.NotNil(t, h)
	return h
}
