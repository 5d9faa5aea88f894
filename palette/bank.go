package palette

import (
	"log/slog"
	"slices"

	"github.com/joshuapare/palettekit/dirty"
	"github.com/joshuapare/palettekit/internal/logger"
	"github.com/joshuapare/palettekit/palette/index"
	"github.com/joshuapare/palettekit/pkg/types"
)

// Bank manages one hardware palette: 16 slots of 16 colors.
//
// The bank keeps two color buffers. initial holds the colors callers asked
// for; final holds initial with every effect applied and is what gets
// transferred to hardware. final is never a source of truth and can be
// rebuilt from initial at any time.
//
// NOT thread-safe. A bank and every handle it returned must be used from one
// goroutine, or guarded by one external mutex.
type Bank struct {
	opts Options

	slots   [types.PaletteSlots]slot
	initial [types.BankColors]types.Color
	final   [types.BankColors]types.Color
	index   *index.Index
	commit  *dirty.Tracker

	transparentColor    types.Color
	hasTransparentColor bool
	transparentChanged  bool

	brightness         types.Fixed
	contrast           types.Fixed
	intensity          types.Fixed
	inverted           bool
	grayscaleIntensity types.Fixed
	hueShiftIntensity  types.Fixed
	fadeColor          types.Color
	fadeIntensity      types.Fixed

	pending              bool // something changed since the last Update
	updateGlobalEffects  bool // a global effect changed since the last Update
	globalEffectsEnabled bool // at least one global effect has a visible strength
	globalEffectsUpdated bool // an Update since the last commit was driven by global effects
	stopped              bool
}

// NewBank creates an empty bank.
func NewBank(opts Options) *Bank {
	b := &Bank{
		opts:   opts,
		index:  index.New(types.PaletteSlots),
		commit: dirty.NewTracker(types.ColorsPerSlot),
	}
	for i := range b.slots {
		b.slots[i] = newSlot()
	}
	return b
}

// Kind returns the hardware palette the bank drives.
func (b *Bank) Kind() Kind { return b.opts.Kind }

func (b *Bank) logger() *slog.Logger {
	if b.opts.Logger != nil {
		return b.opts.Logger
	}
	return logger.L
}

// slotColors returns the initial colors of the run starting at id.
func (b *Bank) slotColors(id int) []types.Color {
	off := id * types.ColorsPerSlot
	return b.initial[off : off+b.slots[id].colorsCount()]
}

func (b *Bank) finalColors(id int) []types.Color {
	off := id * types.ColorsPerSlot
	return b.final[off : off+b.slots[id].colorsCount()]
}

// sameColors reports whether the run starting at id holds exactly colors.
func (b *Bank) sameColors(colors []types.Color, id int) bool {
	if len(colors) != b.slots[id].colorsCount() {
		return false
	}
	return slices.Equal(colors, b.slotColors(id))
}

// bpp8SlotsCount returns the width of the BPP8 region at the start of the
// bank, or 0 when there is none.
func (b *Bank) bpp8SlotsCount() int {
	first := &b.slots[0]
	if first.active() && first.bpp8 {
		return first.slotsCount
	}
	return 0
}

// firstBPP4Index returns the lowest slot holding an active BPP4 palette, or
// the slot count when there is none.
func (b *Bank) firstBPP4Index() int {
	for i := 0; i < types.PaletteSlots; i += b.slots[i].slotsCount {
		s := &b.slots[i]
		if s.active() && !s.bpp8 {
			return i
		}
	}
	return types.PaletteSlots
}

// setColors stores colors as the initial colors of the run at id and marks it
// for recomputation.
func (b *Bank) setColors(id int, colors []types.Color) {
	copy(b.initial[id*types.ColorsPerSlot:], colors)
	b.markDirty(id)
}

func (b *Bank) markDirty(id int) {
	b.slots[id].dirty = true
	b.pending = true
}
