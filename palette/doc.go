// Package palette manages the hardware color palettes of the display.
//
// # Overview
//
// A Bank owns one palette memory of 16 slots × 16 RGB555 colors. Callers ask
// it for palettes and get back reference-counted Handles; identical BPP4
// palettes share one slot, and a BPP8 palette occupies a prefix of the bank.
//
//	bank := palette.NewBank(palette.DefaultOptions(palette.KindSprite))
//	h, err := bank.Create(palette.NewItem(colors, types.BPP4))
//	if err != nil {
//	    return err // errors.Is(err, types.ErrOutOfPaletteMemory)
//	}
//	defer h.Release()
//
// # Layout
//
// BPP4 palettes are allocated from slot 15 downwards, first fit. The BPP8
// palette, if any, starts at slot 0 and can grow in place while it stays
// below the lowest BPP4 palette:
//
//	slot:  0   1   2 ... 7 | 8 ... 13  14  15
//	       [ BPP8 region ] |  free   [BPP4 BPP4]
//
// # Effects
//
// Every palette has its own effect stack (hue shift, invert, grayscale,
// fade, rotation) and the bank has a global one (brightness, contrast,
// intensity, hue shift, invert, grayscale, fade). Effects never modify the
// colors a palette was created with: Update rebuilds the final colors from
// them, for changed palettes only unless a global effect is involved.
//
// # Commit
//
// After Update, RetrieveCommitData returns the slot-aligned window of final
// colors that changed. Once it has been transferred, ResetCommitData clears
// it. See the transfer package.
//
// # Thread Safety
//
// Banks and handles are not thread-safe. Use them from one goroutine or
// guard each bank with one mutex.
package palette
