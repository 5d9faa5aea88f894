package palette

import (
	"fmt"
	"slices"

	"github.com/joshuapare/palettekit/internal/decompress"
	"github.com/joshuapare/palettekit/pkg/types"
)

// Item describes the colors of a palette to find or create: either plain
// colors or a compressed color stream, plus the bits-per-pixel mode.
type Item struct {
	colors      []types.Color
	data        []byte
	bpp         types.BPP
	compression types.Compression
}

// NewItem returns an item holding uncompressed colors.
func NewItem(colors []types.Color, bpp types.BPP) Item {
	return Item{colors: colors, bpp: bpp, compression: types.CompressionNone}
}

// NewCompressedItem returns an item whose colors are stored in data using the
// given BIOS compression format.
func NewCompressedItem(data []byte, compression types.Compression, bpp types.BPP) Item {
	return Item{data: data, bpp: bpp, compression: compression}
}

// BPP returns the bits-per-pixel mode of the item.
func (i Item) BPP() types.BPP { return i.bpp }

// Compression returns how the item's colors are stored.
func (i Item) Compression() types.Compression { return i.compression }

// Decode returns the item's colors, decompressing them if needed, and checks
// the color count against the item's mode. The returned slice never aliases
// the item.
func (i Item) Decode() ([]types.Color, error) {
	var colors []types.Color
	if i.compression == types.CompressionNone {
		colors = slices.Clone(i.colors)
	} else {
		var err error
		colors, err = decompress.Colors(i.compression, i.data)
		if err != nil {
			return nil, fmt.Errorf("decode %s palette: %w", i.bpp, err)
		}
	}
	if err := checkColorsCount(i.bpp, len(colors)); err != nil {
		return nil, err
	}
	return colors, nil
}

// checkColorsCount validates a palette width: BPP4 palettes have exactly 16
// colors; BPP8 palettes have a non-zero multiple of 16, up to 256.
func checkColorsCount(bpp types.BPP, n int) error {
	switch bpp {
	case types.BPP4:
		if n != types.BPP4Colors {
			return types.Errorf(types.ErrKindInvalidParameter, "invalid bpp4 colors count: %d", n)
		}
	case types.BPP8:
		if n == 0 || n > types.BankColors || n%types.ColorsPerSlot != 0 {
			return types.Errorf(types.ErrKindInvalidParameter, "invalid bpp8 colors count: %d", n)
		}
	default:
		return types.Errorf(types.ErrKindInvalidParameter, "invalid bpp mode: %d", bpp)
	}
	return nil
}
