package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/palettekit/palette"
	"github.com/joshuapare/palettekit/pkg/types"
)

func at(img image.Image, x, y int) types.Color {
	return types.ColorModel.Convert(img.At(x, y)).(types.Color)
}

func TestSwatch_Layout(t *testing.T) {
	colors := []types.Color{types.RGB(31, 0, 0), types.RGB(0, 31, 0), types.RGB(3, 5, 7)}
	img, err := Swatch(colors, 2, 4)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())

	assert.Equal(t, colors[0], at(img, 0, 0))
	assert.Equal(t, colors[0], at(img, 3, 3))
	assert.Equal(t, colors[1], at(img, 4, 0))
	assert.Equal(t, colors[1], at(img, 7, 3))
	assert.Equal(t, colors[2], at(img, 1, 6))
	assert.Equal(t, uint8(0), img.RGBAAt(6, 6).A, "partial row stays transparent")
}

func TestSwatch_Invalid(t *testing.T) {
	_, err := Swatch(nil, 16, 1)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
	_, err = Swatch([]types.Color{1}, 0, 1)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
	_, err = Swatch([]types.Color{1}, 1, 0)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestBankSwatch(t *testing.T) {
	bank := palette.NewBank(palette.DefaultOptions(palette.KindBackground))
	colors := make([]types.Color, types.BPP4Colors)
	for i := range colors {
		colors[i] = types.RGB(i, i, 31-i)
	}
	_, err := bank.Create(palette.NewItem(colors, types.BPP4))
	require.NoError(t, err)
	bank.Update()

	img, err := BankSwatch(bank, 2)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
	for i, c := range colors {
		assert.Equal(t, c, at(img, i*2+1, 15*2+1))
	}
	assert.Equal(t, types.Color(0), at(img, 0, 0))
}

func TestHBlankStrip(t *testing.T) {
	img, err := HBlankStrip([]uint16{uint16(types.RGB(1, 2, 3)), uint16(types.RGB(31, 31, 31))}, 3)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, types.RGB(1, 2, 3), at(img, 2, 0))
	assert.Equal(t, types.RGB(31, 31, 31), at(img, 0, 1))

	_, err = HBlankStrip(nil, 3)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestItemFromImage(t *testing.T) {
	small := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{
		color.RGBA{R: 0xFF, A: 0xFF},
		color.RGBA{G: 0xFF, A: 0xFF},
		color.RGBA{B: 0x08, A: 0xFF},
	})
	item, err := ItemFromImage(small)
	require.NoError(t, err)
	assert.Equal(t, types.BPP4, item.BPP())
	colors, err := item.Decode()
	require.NoError(t, err)
	require.Len(t, colors, types.BPP4Colors)
	assert.Equal(t, types.RGB(31, 0, 0), colors[0])
	assert.Equal(t, types.RGB(0, 31, 0), colors[1])
	assert.Equal(t, types.RGB(0, 0, 1), colors[2])
	assert.Equal(t, types.Color(0), colors[15])

	big := image.NewPaletted(image.Rect(0, 0, 1, 1), Palette(make([]types.Color, 17)))
	item, err = ItemFromImage(big)
	require.NoError(t, err)
	assert.Equal(t, types.BPP8, item.BPP())

	bank := palette.NewBank(palette.DefaultOptions(palette.KindSprite))
	h, err := bank.Create(item)
	require.NoError(t, err)
	assert.Equal(t, 32, h.ColorsCount())

	_, err = ItemFromImage(image.NewPaletted(image.Rect(0, 0, 1, 1), nil))
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	colors := []types.Color{types.RGB(31, 0, 0), types.RGB(0, 0, 31)}
	img, err := Swatch(colors, 2, 3)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, EncodePNG(&out, img))
	decoded, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	assert.Equal(t, colors[1], at(decoded, 4, 1))

	path := filepath.Join(t.TempDir(), "swatch.png")
	require.NoError(t, WritePNG(path, img))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}
