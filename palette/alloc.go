package palette

import (
	"log/slog"

	"github.com/joshuapare/palettekit/palette/index"
	"github.com/joshuapare/palettekit/pkg/types"
)

// Find returns a new handle to an active palette holding the item's colors,
// or nil when there is none. A hit increments the palette's usages.
//
// BPP4 palettes are found through the content index. A BPP8 palette is found
// when the BPP8 region is at least as wide as the item and starts with the
// item's colors.
func (b *Bank) Find(item Item) (*Handle, error) {
	colors, err := item.Decode()
	if err != nil {
		return nil, err
	}
	id, ok := b.find(colors, item.BPP())
	if !ok {
		return nil, nil
	}
	return b.newHandle(id), nil
}

// Create returns a handle to a palette holding the item's colors, sharing an
// existing one when possible. It fails with types.ErrOutOfPaletteMemory when
// the bank has no room; the bank status is logged first.
func (b *Bank) Create(item Item) (*Handle, error) {
	return b.create(item, true, true)
}

// CreateOptional is Create, but returns a nil handle and no error when the
// bank has no room.
func (b *Bank) CreateOptional(item Item) (*Handle, error) {
	return b.create(item, true, false)
}

// CreateNew is Create without looking for an existing palette first: a BPP4
// item always gets its own slot.
func (b *Bank) CreateNew(item Item) (*Handle, error) {
	return b.create(item, false, true)
}

// CreateNewOptional is CreateNew, but returns a nil handle and no error when
// the bank has no room.
func (b *Bank) CreateNewOptional(item Item) (*Handle, error) {
	return b.create(item, false, false)
}

func (b *Bank) create(item Item, find, required bool) (*Handle, error) {
	// Decoding and validation happen before anything in the bank changes.
	colors, err := item.Decode()
	if err != nil {
		return nil, err
	}

	bpp := item.BPP()
	if find {
		if id, ok := b.find(colors, bpp); ok {
			return b.newHandle(id), nil
		}
	}

	var (
		id int
		ok bool
	)
	if bpp == types.BPP8 {
		id, ok = b.createBPP8(colors)
	} else {
		id, ok = b.createBPP4(colors, index.Hash(colors))
	}
	if ok {
		b.logger().Debug("palette created",
			"bank", b.opts.Kind, "bpp", bpp, "slot", id, "colors", len(colors))
		return b.newHandle(id), nil
	}

	if !required {
		return nil, nil
	}
	b.LogStatus(slog.LevelError)
	return nil, types.Errorf(types.ErrKindOutOfMemory,
		"%s %s palette create failed: colors count %d", b.opts.Kind, bpp, len(colors))
}

func (b *Bank) find(colors []types.Color, bpp types.BPP) (int, bool) {
	if bpp == types.BPP8 {
		return b.findBPP8(colors)
	}
	return b.findBPP4(colors, index.Hash(colors))
}

func (b *Bank) findBPP4(colors []types.Color, hash uint16) (int, bool) {
	id, ok := b.index.Lookup(hash, func(slot int) bool {
		return b.sameColors(colors, slot)
	})
	if !ok {
		return 0, false
	}
	b.slots[id].usages++
	return id, true
}

func (b *Bank) findBPP8(colors []types.Color) (int, bool) {
	if b.bpp8SlotsCount()*types.ColorsPerSlot < len(colors) {
		return 0, false
	}
	for i, c := range colors {
		if b.initial[i] != c {
			return 0, false
		}
	}
	b.slots[0].usages++
	return 0, true
}

// createBPP4 claims the highest free slot. Slots are scanned downwards and
// never below the BPP8 region.
func (b *Bank) createBPP4(colors []types.Color, hash uint16) (int, bool) {
	required := len(colors) / types.ColorsPerSlot
	free := 0

	for id := types.PaletteSlots - 1; id >= b.bpp8SlotsCount(); id-- {
		s := &b.slots[id]
		if s.active() || s.locked {
			free = 0
			continue
		}

		free++
		if free < required {
			continue
		}

		s.usages = 1
		s.hash = hash
		s.slotsCount = required
		s.rotateRangeSize = len(colors) - 1
		for i := 0; i < required; i++ {
			b.slots[id+i].locked = true
		}

		b.setColors(id, colors)
		b.index.Add(hash, id)
		return id, true
	}
	return 0, false
}

// createBPP8 places colors at the start of the bank. An existing BPP8 region
// wide enough is shared as is; a narrower one grows in place when the new
// width stays below the first BPP4 palette.
func (b *Bank) createBPP8(colors []types.Color) (int, bool) {
	first := &b.slots[0]
	if first.active() && !first.bpp8 {
		return 0, false
	}

	required := len(colors) / types.ColorsPerSlot
	if b.bpp8SlotsCount() >= required {
		first.usages++
		return 0, true
	}
	if required > b.firstBPP4Index() {
		return 0, false
	}

	if first.active() {
		first.usages++
	} else {
		first.usages = 1
		first.bpp8 = true
	}
	first.slotsCount = required
	first.rotateRangeSize = len(colors) - 1
	for i := 0; i < required; i++ {
		b.slots[i].locked = true
	}

	b.setColors(0, colors)
	return 0, true
}

func (b *Bank) increaseUsages(id int) {
	b.slots[id].usages++
}

// decreaseUsages drops one usage of the palette at id. The last one unlocks
// every slot of the run and resets the palette.
func (b *Bank) decreaseUsages(id int) {
	s := &b.slots[id]
	s.usages--
	if s.usages > 0 {
		return
	}

	for i := 0; i < s.slotsCount; i++ {
		b.slots[id+i].locked = false
	}
	if !s.bpp8 {
		b.index.Remove(s.hash, id)
	}
	b.logger().Debug("palette released", "bank", b.opts.Kind, "slot", id, "slots", s.slotsCount)
	s.reset()
}
