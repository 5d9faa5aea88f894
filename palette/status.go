package palette

import (
	"context"
	"log/slog"

	"github.com/joshuapare/palettekit/palette/index"
	"github.com/joshuapare/palettekit/pkg/types"
)

// UsedColorsCount returns the number of colors held by active palettes.
func (b *Bank) UsedColorsCount() int {
	used := 0
	for i := range b.slots {
		if s := &b.slots[i]; s.active() {
			used += s.slotsCount
		}
	}
	return used * types.ColorsPerSlot
}

// AvailableColorsCount returns the number of colors not held by any palette.
func (b *Bank) AvailableColorsCount() int {
	return types.BankColors - b.UsedColorsCount()
}

// LogStatus logs the bank occupancy and one record per active palette.
func (b *Bank) LogStatus(level slog.Level) {
	ctx := context.Background()
	log := b.logger()
	if !log.Enabled(ctx, level) {
		return
	}

	stats := b.index.Stats()
	log.Log(ctx, level, "palettes status",
		"bank", b.opts.Kind,
		"used_slots", b.UsedColorsCount()/types.ColorsPerSlot,
		"index_entries", stats.Entries,
		"index_buckets", stats.Buckets,
		"index_collisions", stats.Collisions)
	for i := range b.slots {
		s := &b.slots[i]
		if !s.active() {
			continue
		}
		bpp := types.BPP4
		if s.bpp8 {
			bpp = types.BPP8
		}
		log.Log(ctx, level, "palette",
			"bank", b.opts.Kind,
			"bpp", bpp,
			"slot", i,
			"slots", s.slotsCount,
			"colors", s.colorsCount(),
			"usages", s.usages)
	}
}

// SlotInfo is a read-only view of one physical slot.
type SlotInfo struct {
	Usages     int
	SlotsCount int
	BPP8       bool
	Locked     bool
	Hash       uint16
	Dirty      bool
}

// Snapshot is a deep copy of the bank state, for invariant checks and
// debugging.
type Snapshot struct {
	Kind    Kind
	Slots   [types.PaletteSlots]SlotInfo
	Index   []index.Entry
	Initial [types.BankColors]types.Color
	Final   [types.BankColors]types.Color
}

// Snapshot copies the bank state.
func (b *Bank) Snapshot() Snapshot {
	snap := Snapshot{
		Kind:    b.opts.Kind,
		Index:   b.index.Entries(),
		Initial: b.initial,
		Final:   b.final,
	}
	for i := range b.slots {
		s := &b.slots[i]
		snap.Slots[i] = SlotInfo{
			Usages:     s.usages,
			SlotsCount: s.slotsCount,
			BPP8:       s.bpp8,
			Locked:     s.locked,
			Hash:       s.hash,
			Dirty:      s.dirty,
		}
	}
	return snap
}
