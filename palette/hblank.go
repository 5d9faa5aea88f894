package palette

import (
	"github.com/joshuapare/palettekit/pkg/types"
)

// FillHBlankColors writes one color per scanline (types.DisplayHeight colors)
// from src to dst with the effects of the palette referenced by h and the
// bank's global effects applied. A nil h applies global effects only.
// Rotation is not applied and the bank's final colors are left untouched.
func (b *Bank) FillHBlankColors(h *Handle, src []types.Color, dst []uint16) error {
	const n = types.DisplayHeight
	if len(src) < n || len(dst) < n {
		return types.Errorf(types.ErrKindInvalidParameter,
			"hblank colors count: src %d, dst %d, want %d", len(src), len(dst), n)
	}
	if h != nil && (h.released || h.bank != b) {
		return types.Errorf(types.ErrKindInvalidParameter, "hblank palette handle doesn't belong to the bank")
	}

	var row [types.DisplayHeight]types.Color
	copy(row[:], src[:n])
	if h != nil {
		h.slot().applyEffects(row[:])
	}
	if b.globalEffectsEnabled {
		b.applyGlobalEffects(row[:])
	}
	for i, c := range row {
		dst[i] = uint16(c)
	}
	return nil
}
