package index

import (
	"slices"

	"github.com/joshuapare/palettekit/pkg/types"
)

// hashedWords is the number of 32-bit color words folded into a hash.
const hashedWords = 3

// Hash returns the dedup hash of a color block. It never returns 0 for a
// non-empty block.
func Hash(colors []types.Color) uint16 {
	var sum uint32
	for w := 0; w < hashedWords; w++ {
		lo := 2 * w
		if lo >= len(colors) {
			break
		}
		word := uint32(colors[lo])
		if lo+1 < len(colors) {
			word |= uint32(colors[lo+1]) << 16
		}
		sum += word
	}
	return uint16(sum | uint32(len(colors)))
}

// Entry is one (hash, slot) association.
type Entry struct {
	Hash uint16
	Slot int
}

// Stats reports index occupancy.
type Stats struct {
	Entries    int // Registered slots
	Buckets    int // Distinct hashes
	Collisions int // Slots sharing a bucket with another slot
}

// Index maps content hashes to the slots holding that content.
//
// NOT thread-safe.
type Index struct {
	buckets map[uint16][]int16
	entries int
}

// New creates an empty index sized for capacity slots.
func New(capacity int) *Index {
	if capacity <= 0 {
		capacity = types.PaletteSlots
	}
	return &Index{buckets: make(map[uint16][]int16, capacity)}
}

// Add registers slot under hash. Adding the same pair twice is a no-op.
func (x *Index) Add(hash uint16, slot int) {
	bucket := x.buckets[hash]
	if slices.Contains(bucket, int16(slot)) {
		return
	}
	x.buckets[hash] = append(bucket, int16(slot))
	x.entries++
}

// Remove unregisters slot from hash. It reports whether the pair existed.
func (x *Index) Remove(hash uint16, slot int) bool {
	bucket := x.buckets[hash]
	i := slices.Index(bucket, int16(slot))
	if i < 0 {
		return false
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(x.buckets, hash)
	} else {
		x.buckets[hash] = bucket
	}
	x.entries--
	return true
}

// Lookup returns the first slot registered under hash for which match
// reports true. Candidates are tried in registration order.
func (x *Index) Lookup(hash uint16, match func(slot int) bool) (int, bool) {
	for _, slot := range x.buckets[hash] {
		if match(int(slot)) {
			return int(slot), true
		}
	}
	return 0, false
}

// Contains reports whether slot is registered under hash.
func (x *Index) Contains(hash uint16, slot int) bool {
	return slices.Contains(x.buckets[hash], int16(slot))
}

// Len returns the number of registered slots.
func (x *Index) Len() int { return x.entries }

// Entries returns every registration sorted by slot.
func (x *Index) Entries() []Entry {
	out := make([]Entry, 0, x.entries)
	for hash, bucket := range x.buckets {
		for _, slot := range bucket {
			out = append(out, Entry{Hash: hash, Slot: int(slot)})
		}
	}
	slices.SortFunc(out, func(a, b Entry) int { return a.Slot - b.Slot })
	return out
}

// Stats returns occupancy statistics.
func (x *Index) Stats() Stats {
	s := Stats{Entries: x.entries, Buckets: len(x.buckets)}
	for _, bucket := range x.buckets {
		if len(bucket) > 1 {
			s.Collisions += len(bucket)
		}
	}
	return s
}

// Reset removes every registration.
func (x *Index) Reset() {
	clear(x.buckets)
	x.entries = 0
}
