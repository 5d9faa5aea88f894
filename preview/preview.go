package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/joshuapare/palettekit/internal/writer"
	"github.com/joshuapare/palettekit/palette"
	"github.com/joshuapare/palettekit/pkg/types"
)

// Swatch lays colors out left to right in rows of columns colors, each color
// drawn as a scale x scale square. A trailing partial row is left
// transparent.
func Swatch(colors []types.Color, columns, scale int) (*image.RGBA, error) {
	if columns <= 0 || scale <= 0 {
		return nil, types.Errorf(types.ErrKindInvalidParameter, "invalid swatch geometry: %d columns, scale %d", columns, scale)
	}
	if len(colors) == 0 {
		return nil, types.Errorf(types.ErrKindInvalidParameter, "empty swatch")
	}

	rows := (len(colors) + columns - 1) / columns
	src := image.NewRGBA(image.Rect(0, 0, columns, rows))
	for i, c := range colors {
		src.Set(i%columns, i/columns, c)
	}

	dst := image.NewRGBA(image.Rect(0, 0, columns*scale, rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// BankSwatch renders the final colors of bank, one slot per row.
func BankSwatch(bank *palette.Bank, scale int) (*image.RGBA, error) {
	return Swatch(bank.FinalColors(), types.ColorsPerSlot, scale)
}

// HBlankStrip renders one horizontal line of width pixels per H-Blank
// color, as filled by palette.Bank.FillHBlankColors.
func HBlankStrip(colors []uint16, width int) (*image.RGBA, error) {
	if width <= 0 || len(colors) == 0 {
		return nil, types.Errorf(types.ErrKindInvalidParameter, "invalid strip: %d colors, width %d", len(colors), width)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, len(colors)))
	for y, c := range colors {
		line := image.Rect(0, y, width, y+1)
		draw.Draw(dst, line, image.NewUniform(types.Color(c)), image.Point{}, draw.Src)
	}
	return dst, nil
}

// ColorsFromImage returns the palette of an indexed image as RGB555
// colors, padded with black to a multiple of 16 colors so it can be used
// as a palette item.
func ColorsFromImage(img *image.Paletted) ([]types.Color, error) {
	n := len(img.Palette)
	if n == 0 || n > types.BankColors {
		return nil, types.Errorf(types.ErrKindInvalidParameter, "invalid image palette size: %d", n)
	}
	padded := (n + types.ColorsPerSlot - 1) / types.ColorsPerSlot * types.ColorsPerSlot
	out := make([]types.Color, padded)
	for i, c := range img.Palette {
		out[i] = types.ColorModel.Convert(c).(types.Color)
	}
	return out, nil
}

// ItemFromImage builds a palette item from the palette of an indexed image:
// 4bpp when it fits in 16 colors, 8bpp otherwise.
func ItemFromImage(img *image.Paletted) (palette.Item, error) {
	colors, err := ColorsFromImage(img)
	if err != nil {
		return palette.Item{}, err
	}
	bpp := types.BPP8
	if len(colors) == types.BPP4Colors {
		bpp = types.BPP4
	}
	return palette.NewItem(colors, bpp), nil
}

// Palette converts colors into an image/color.Palette.
func Palette(colors []types.Color) color.Palette {
	p := make(color.Palette, len(colors))
	for i, c := range colors {
		p[i] = c
	}
	return p
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("preview: encode png: %w", err)
	}
	return nil
}

// WritePNG atomically replaces the file at path with img as PNG.
func WritePNG(path string, img image.Image) error {
	var out bytes.Buffer
	if err := EncodePNG(&out, img); err != nil {
		return err
	}
	w := &writer.FileWriter{Path: path}
	if err := w.Emit(out.Bytes()); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
