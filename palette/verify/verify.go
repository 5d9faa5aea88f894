package verify

import (
	"fmt"
	"slices"

	"github.com/joshuapare/palettekit/palette"
	"github.com/joshuapare/palettekit/palette/index"
	"github.com/joshuapare/palettekit/pkg/types"
)

// ValidationError describes one broken invariant.
type ValidationError struct {
	Type    string
	Message string
	Slot    int
}

func (e *ValidationError) Error() string {
	if e.Slot >= 0 {
		return fmt.Sprintf("%s at slot %d: %s", e.Type, e.Slot, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates the layout, lock and index invariants in one call.
// Returns the first error encountered, or nil if all checks pass.
//
// Dedup is not included: CreateNew and Handle.SetColors can legitimately
// produce two palettes with the same colors.
func AllInvariants(snap palette.Snapshot) error {
	if err := Layout(snap); err != nil {
		return err
	}
	if err := Locks(snap); err != nil {
		return err
	}
	return Index(snap)
}

// runs returns the first slot of every run, stepping by run width.
func runs(snap palette.Snapshot) []int {
	var out []int
	for i := 0; i < types.PaletteSlots; {
		out = append(out, i)
		i += max(snap.Slots[i].SlotsCount, 1)
	}
	return out
}

func colors(snap palette.Snapshot, id int) []types.Color {
	off := id * types.ColorsPerSlot
	return snap.Initial[off : off+snap.Slots[id].SlotsCount*types.ColorsPerSlot]
}

// Layout validates run widths and the BPP8/BPP4 split.
func Layout(snap palette.Snapshot) error {
	used := 0
	for _, id := range runs(snap) {
		s := snap.Slots[id]
		if s.SlotsCount < 1 || id+s.SlotsCount > types.PaletteSlots {
			return &ValidationError{
				Type:    "Layout",
				Message: fmt.Sprintf("run width %d overflows the bank", s.SlotsCount),
				Slot:    id,
			}
		}
		if s.Usages == 0 {
			continue
		}
		used += s.SlotsCount

		if s.BPP8 && id != 0 {
			return &ValidationError{Type: "Layout", Message: "bpp8 palette outside slot 0", Slot: id}
		}
		if !s.BPP8 && s.SlotsCount != 1 {
			return &ValidationError{
				Type:    "Layout",
				Message: fmt.Sprintf("bpp4 palette spans %d slots", s.SlotsCount),
				Slot:    id,
			}
		}
		for j := id + 1; j < id+s.SlotsCount; j++ {
			if snap.Slots[j].Usages != 0 {
				return &ValidationError{Type: "Layout", Message: "secondary slot of a run is in use", Slot: j}
			}
		}
	}
	if used > types.PaletteSlots {
		return &ValidationError{
			Type:    "Layout",
			Message: fmt.Sprintf("active runs use %d slots", used),
			Slot:    -1,
		}
	}
	return nil
}

// Locks validates that locks and usages are coupled at the run level.
func Locks(snap palette.Snapshot) error {
	var inRun [types.PaletteSlots]bool
	for _, id := range runs(snap) {
		s := snap.Slots[id]
		if s.Usages == 0 {
			continue
		}
		for j := id; j < id+s.SlotsCount && j < types.PaletteSlots; j++ {
			inRun[j] = true
		}
	}
	for i, s := range snap.Slots {
		if s.Locked != inRun[i] {
			return &ValidationError{
				Type:    "Locks",
				Message: fmt.Sprintf("locked=%t but in active run=%t", s.Locked, inRun[i]),
				Slot:    i,
			}
		}
	}
	return nil
}

// Index validates that the dedup index holds exactly the active BPP4
// palettes, each under the hash of its colors.
func Index(snap palette.Snapshot) error {
	expected := map[index.Entry]bool{}
	for _, id := range runs(snap) {
		s := snap.Slots[id]
		if s.Usages == 0 || s.BPP8 {
			continue
		}
		if want := index.Hash(colors(snap, id)); s.Hash != want {
			return &ValidationError{
				Type:    "Index",
				Message: fmt.Sprintf("stored hash 0x%04X, colors hash 0x%04X", s.Hash, want),
				Slot:    id,
			}
		}
		expected[index.Entry{Hash: s.Hash, Slot: id}] = true
	}

	for _, e := range snap.Index {
		if !expected[e] {
			return &ValidationError{
				Type:    "Index",
				Message: fmt.Sprintf("stale entry for hash 0x%04X", e.Hash),
				Slot:    e.Slot,
			}
		}
		delete(expected, e)
	}
	for e := range expected {
		return &ValidationError{
			Type:    "Index",
			Message: fmt.Sprintf("missing entry for hash 0x%04X", e.Hash),
			Slot:    e.Slot,
		}
	}
	return nil
}

// Dedup validates that no two active BPP4 palettes hold the same colors. It
// holds for banks whose BPP4 palettes were all created through Create or
// CreateOptional and never recolored.
func Dedup(snap palette.Snapshot) error {
	var active []int
	for _, id := range runs(snap) {
		if s := snap.Slots[id]; s.Usages > 0 && !s.BPP8 {
			active = append(active, id)
		}
	}
	for i, a := range active {
		for _, b := range active[i+1:] {
			if slices.Equal(colors(snap, a), colors(snap, b)) {
				return &ValidationError{
					Type:    "Dedup",
					Message: fmt.Sprintf("same colors as slot %d", a),
					Slot:    b,
				}
			}
		}
	}
	return nil
}
