// Package dirty tracks modified ranges of a linear buffer so that only the
// changed portion is recomputed or transferred.
//
// # Overview
//
// A Tracker records [off, off+len) ranges in caller-defined units. Palette
// banks track color indices and align to whole slots (16 colors); mapped
// palette RAM tracks byte offsets and aligns to OS pages.
//
// # Tracker
//
//   - Add(off, length): record a modified range
//   - Window(): the single hull covering every recorded range
//   - Coalesce(): aligned, sorted, merged ranges
//   - Reset(): forget every range
//
// # Usage
//
//	tracker := dirty.NewTracker(16)
//
//	// Slot 3 and slot 5 changed
//	tracker.Add(3*16, 16)
//	tracker.Add(5*16, 16)
//
//	w, ok := tracker.Window() // {Off: 48, Len: 48}, true
//	ranges := tracker.Coalesce() // [{48 16} {80 16}]
//
// # Range Coalescing
//
// Coalesce rounds every range out to the tracker alignment, then merges
// overlapping and adjacent ranges:
//
//	Dirty slots: [0, 1, 2, 5, 6] → Ranges: [0-48, 80-112]
//
// # Thread Safety
//
// Tracker instances are not thread-safe. Callers must synchronize access
// externally.
package dirty
