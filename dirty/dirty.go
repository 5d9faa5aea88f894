package dirty

import "sort"

// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
// A bank has 16 slots, so a full pass never needs to grow the slice.
const defaultRangeCapacity = 16

// Range is a dirty range in tracker units.
type Range struct {
	Off int // First unit
	Len int // Number of units
}

// End returns the first unit past the range.
func (r Range) End() int { return r.Off + r.Len }

// Tracker accumulates dirty ranges.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	ranges []Range // Raw ranges, coalesced on demand
	align  int     // Alignment unit for Coalesce
}

// NewTracker creates a tracker whose coalesced ranges are aligned to align
// units. An align lower than 1 disables alignment.
func NewTracker(align int) *Tracker {
	if align < 1 {
		align = 1
	}
	return &Tracker{
		ranges: make([]Range, 0, defaultRangeCapacity),
		align:  align,
	}
}

// Add records a dirty range. Empty ranges are ignored.
func (t *Tracker) Add(off, length int) {
	if length <= 0 {
		return
	}
	t.ranges = append(t.ranges, Range{Off: off, Len: length})
}

// Empty reports whether no range has been recorded since the last Reset.
func (t *Tracker) Empty() bool { return len(t.ranges) == 0 }

// Window returns the smallest range covering every recorded range, without
// alignment. ok is false when the tracker is empty.
func (t *Tracker) Window() (Range, bool) {
	if len(t.ranges) == 0 {
		return Range{}, false
	}
	start, end := t.ranges[0].Off, t.ranges[0].End()
	for _, r := range t.ranges[1:] {
		start = min(start, r.Off)
		end = max(end, r.End())
	}
	return Range{Off: start, Len: end - start}, true
}

// Reset clears all tracked ranges.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// DebugRanges returns a copy of the raw, uncoalesced ranges.
func (t *Tracker) DebugRanges() []Range {
	result := make([]Range, len(t.ranges))
	copy(result, t.ranges)
	return result
}

// Coalesce aligns all ranges, sorts them, and merges overlapping or adjacent
// ranges. Returns a new slice of non-overlapping, sorted ranges.
func (t *Tracker) Coalesce() []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	aligned := make([]Range, len(t.ranges))
	for i, r := range t.ranges {
		start := (r.Off / t.align) * t.align
		end := r.End()
		if end%t.align != 0 {
			end = ((end / t.align) + 1) * t.align
		}
		aligned[i] = Range{Off: start, Len: end - start}
	}

	sort.Slice(aligned, func(i, j int) bool {
		return aligned[i].Off < aligned[j].Off
	})

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]
	for _, next := range aligned[1:] {
		if next.Off <= current.End() {
			current.Len = max(current.End(), next.End()) - current.Off
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
