package palette

import (
	"github.com/joshuapare/palettekit/pkg/types"
)

// CommitData is the window of final colors that changed since the last
// commit. Colors aliases the bank and is only valid until the next Update.
type CommitData struct {
	Colors []types.Color
	Offset int // First color index in the bank
	Count  int // Number of colors
}

// RetrieveCommitData returns the smallest slot-aligned window covering every
// palette recomputed since the last ResetCommitData. ok is false when there
// is nothing to commit.
func (b *Bank) RetrieveCommitData() (data CommitData, ok bool) {
	w, ok := b.commit.Window()
	if !ok {
		return CommitData{}, false
	}

	const per = types.ColorsPerSlot
	start := (w.Off / per) * per
	end := ((w.End() + per - 1) / per) * per
	return CommitData{
		Colors: b.final[start:end],
		Offset: start,
		Count:  end - start,
	}, true
}

// ResetCommitData marks the current window as transferred.
func (b *Bank) ResetCommitData() {
	b.commit.Reset()
	b.globalEffectsUpdated = false
}

// GlobalEffectsUpdated reports whether an update since the last
// ResetCommitData was driven by a global effect change.
func (b *Bank) GlobalEffectsUpdated() bool { return b.globalEffectsUpdated }

// FinalColors returns a copy of every final color of the bank.
func (b *Bank) FinalColors() []types.Color {
	out := make([]types.Color, types.BankColors)
	copy(out, b.final[:])
	return out
}
