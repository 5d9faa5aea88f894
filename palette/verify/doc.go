// Package verify checks the structural invariants of a palette bank.
//
// # Overview
//
// The checks run on a palette.Snapshot, so they never disturb the bank. They
// are primarily used in tests after every mutation of randomized sequences.
//
// Validation categories:
//   - Layout: run widths fit the bank, BPP8 only at slot 0, BPP4 runs above it
//   - Locks: every slot of an active run is locked, every other slot is not
//   - Index: every active BPP4 palette is reachable through its content hash,
//     and the index holds nothing else
//   - Dedup: no two active BPP4 palettes hold the same colors (not part of
//     AllInvariants; see Dedup)
//
// # Quick Start
//
//	if err := verify.AllInvariants(bank.Snapshot()); err != nil {
//	    t.Fatalf("bank invariants: %v", err)
//	}
//
// # ValidationError
//
// Every failure is a *ValidationError naming the check and the slot (or -1
// when the failure isn't tied to one slot).
package verify
