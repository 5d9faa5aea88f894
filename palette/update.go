package palette

import (
	"github.com/joshuapare/palettekit/pkg/types"
)

// Update recomputes the final colors of every palette that changed since the
// last update and records them for commit. When a global effect changed, or
// any global effect is visible, every active palette is recomputed.
//
// Update is a no-op when nothing changed or after Stop.
func (b *Bank) Update() {
	if !b.pending || b.stopped {
		return
	}

	all := b.updateGlobalEffects || b.globalEffectsEnabled
	b.pending = false
	b.globalEffectsUpdated = b.globalEffectsUpdated || b.updateGlobalEffects
	b.updateGlobalEffects = false

	for id := 0; id < types.PaletteSlots; id += b.slots[id].slotsCount {
		s := &b.slots[id]
		if !s.active() || !(all || s.dirty) {
			continue
		}
		b.recompute(id)
		b.commit.Add(id*types.ColorsPerSlot, s.colorsCount())
	}

	switch {
	case b.hasTransparentColor:
		b.final[0] = b.transparentColor
		if b.globalEffectsEnabled {
			b.applyGlobalEffects(b.final[:1])
		}
		b.commit.Add(0, 1)
	case b.transparentChanged && !b.slots[0].active():
		b.final[0] = 0
		b.commit.Add(0, 1)
	}
	b.transparentChanged = false
}

// recompute rebuilds the final colors of the palette at id from its initial
// colors: palette effects, global effects, then rotation.
func (b *Bank) recompute(id int) {
	s := &b.slots[id]
	final := b.finalColors(id)
	copy(final, b.slotColors(id))

	s.applyEffects(final)
	if b.globalEffectsEnabled {
		b.applyGlobalEffects(final)
	}
	s.rotate(final)
	s.dirty = false
}

// Stop suppresses every further recomputation. Pending changes are dropped.
func (b *Bank) Stop() {
	b.stopped = true
	b.pending = false
}

// Stopped reports whether Stop has been called.
func (b *Bank) Stopped() bool { return b.stopped }
