package palette

import (
	"slices"

	"github.com/joshuapare/palettekit/palette/index"
	"github.com/joshuapare/palettekit/pkg/types"
)

// Handle is a shared reference to a palette in a bank. Every handle owns one
// usage of the palette: Clone adds one, Release gives it back. Handles to the
// same palette see each other's changes.
//
// Handles are not safe for concurrent use; see Bank.
type Handle struct {
	bank     *Bank
	id       int
	released bool
}

func (b *Bank) newHandle(id int) *Handle {
	return &Handle{bank: b, id: id}
}

var errReleased = types.Errorf(types.ErrKindInvalidParameter, "palette handle released")

// Clone returns a new handle to the same palette. Cloning a released handle
// fails.
func (h *Handle) Clone() (*Handle, error) {
	if h.released {
		return nil, errReleased
	}
	h.bank.increaseUsages(h.id)
	return h.bank.newHandle(h.id), nil
}

// Release gives back the handle's usage. Releasing twice, or releasing a nil
// handle, is a no-op.
func (h *Handle) Release() {
	if h == nil || h.released {
		return
	}
	h.released = true
	h.bank.decreaseUsages(h.id)
}

// Released reports whether Release has been called.
func (h *Handle) Released() bool { return h.released }

// Bank returns the bank the palette lives in.
func (h *Handle) Bank() *Bank { return h.bank }

// SameSlot reports whether h and other reference the same palette.
func (h *Handle) SameSlot(other *Handle) bool {
	return other != nil && h.bank == other.bank && h.id == other.id
}

// Getters of a released handle report an empty palette: the slot may
// already belong to another one.

// Usages returns the number of live handles to the palette.
func (h *Handle) Usages() int { return h.view().usages }

func (h *Handle) slot() *slot { return &h.bank.slots[h.id] }

// view returns a copy of the palette record, or an empty record once released.
func (h *Handle) view() slot {
	if h.released {
		return slot{}
	}
	return h.bank.slots[h.id]
}

// BPP returns the palette's bits-per-pixel mode.
func (h *Handle) BPP() types.BPP {
	if h.view().bpp8 {
		return types.BPP8
	}
	return types.BPP4
}

// ColorsCount returns the palette width in colors.
func (h *Handle) ColorsCount() int {
	s := h.view()
	return s.colorsCount()
}

// Colors returns a copy of the palette's colors before effects, or nil once
// released.
func (h *Handle) Colors() []types.Color {
	if h.released {
		return nil
	}
	return slices.Clone(h.bank.slotColors(h.id))
}

// SetColors replaces the palette's colors. The new colors must have the
// palette's width; otherwise types.ErrColorCountMismatch is returned and
// nothing changes.
func (h *Handle) SetColors(colors []types.Color) error {
	if h.released {
		return errReleased
	}
	s := h.slot()
	if len(colors) != s.colorsCount() {
		return types.Errorf(types.ErrKindColorCountMismatch,
			"colors count mismatch: %d - %d", len(colors), s.colorsCount())
	}

	if !s.bpp8 {
		if hash := index.Hash(colors); hash != s.hash {
			h.bank.index.Remove(s.hash, h.id)
			h.bank.index.Add(hash, h.id)
			s.hash = hash
		}
	}
	h.bank.setColors(h.id, colors)
	return nil
}

// SetColor replaces the color at i.
func (h *Handle) SetColor(i int, c types.Color) error {
	if h.released {
		return errReleased
	}
	if i < 0 || i >= h.ColorsCount() {
		return types.Errorf(types.ErrKindInvalidParameter, "invalid color index: %d - %d", i, h.ColorsCount())
	}
	colors := h.Colors()
	colors[i] = c
	return h.SetColors(colors)
}

// Reload forces the palette to be recomputed and committed on the next update.
func (h *Handle) Reload() {
	if h.released {
		return
	}
	h.bank.markDirty(h.id)
}
