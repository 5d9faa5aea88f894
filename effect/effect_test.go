package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/palettekit/pkg/types"
)

func colors(n int) []types.Color {
	out := make([]types.Color, n)
	for i := range out {
		out[i] = types.RGB(i%32, (i*3)%32, (i*7)%32)
	}
	return out
}

func TestStrengthDomain(t *testing.T) {
	src := colors(16)
	ops := map[string]func(f types.Fixed, dst []types.Color) error{
		"brightness": func(f types.Fixed, d []types.Color) error { return Brightness(src, f, d) },
		"contrast":   func(f types.Fixed, d []types.Color) error { return Contrast(src, f, d) },
		"intensity":  func(f types.Fixed, d []types.Color) error { return Intensity(src, f, d) },
		"grayscale":  func(f types.Fixed, d []types.Color) error { return Grayscale(src, f, d) },
		"hue_shift":  func(f types.Fixed, d []types.Color) error { return HueShift(src, f, d) },
		"blend":      func(f types.Fixed, d []types.Color) error { return Blend(src, src, f, d) },
		"fade":       func(f types.Fixed, d []types.Color) error { return Fade(src, 0, f, d) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			dst := make([]types.Color, len(src))
			require.NoError(t, op(types.FixedZero, dst))
			require.NoError(t, op(types.FixedOne, dst))

			untouched := make([]types.Color, len(src))
			untouched[0] = 0x1234

			assert.ErrorIs(t, op(-1, untouched), types.ErrInvalidParameter)
			assert.ErrorIs(t, op(types.FixedOne+1, untouched), types.ErrInvalidParameter)
			assert.ErrorIs(t, op(types.FixedOne/2, make([]types.Color, 3)), types.ErrInvalidParameter)
			assert.Equal(t, types.Color(0x1234), untouched[0], "failed calls must not write")
		})
	}
}

func TestGrayscale_OddCount(t *testing.T) {
	src := colors(15)
	err := Grayscale(src, types.FixedOne, make([]types.Color, 15))
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestFade_Full(t *testing.T) {
	src := colors(16)
	dst := make([]types.Color, 16)
	fade := types.RGB(31, 0, 31)
	require.NoError(t, Fade(src, fade, types.FixedOne, dst))
	for _, c := range dst {
		assert.Equal(t, fade, c)
	}
}

func TestRotate(t *testing.T) {
	src := colors(8)
	dst := make([]types.Color, 8)

	assert.ErrorIs(t, Rotate(src, 8, dst), types.ErrInvalidParameter)
	assert.ErrorIs(t, Rotate(src, -8, dst), types.ErrInvalidParameter)
	assert.ErrorIs(t, Rotate(src, 1, dst[:4]), types.ErrInvalidParameter)

	require.NoError(t, Rotate(src, 3, dst))
	require.NoError(t, Rotate(dst, -3, dst))
	assert.Equal(t, src, dst)
}

func TestInvert(t *testing.T) {
	src := colors(4)
	dst := make([]types.Color, 4)
	require.NoError(t, Invert(src, dst))
	for i := range src {
		assert.Equal(t, src[i]^types.ColorMask, dst[i])
	}
	assert.ErrorIs(t, Invert(src, nil), types.ErrInvalidParameter)
}

func TestBlend_ShortOperand(t *testing.T) {
	err := Blend(colors(4), colors(2), types.FixedOne/2, make([]types.Color, 4))
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}
