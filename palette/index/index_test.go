package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/palettekit/pkg/types"
)

func block(seed types.Color) []types.Color {
	out := make([]types.Color, types.BPP4Colors)
	for i := range out {
		out[i] = seed + types.Color(i)
	}
	return out
}

func TestHash(t *testing.T) {
	// Words: 0x0001_0000, 0x0003_0002, 0x0005_0004 → sum 0x0009_0006, | 16.
	assert.Equal(t, uint16(0x0016), Hash(block(0)))

	zeros := make([]types.Color, types.BPP4Colors)
	assert.Equal(t, uint16(types.BPP4Colors), Hash(zeros), "count keeps the hash non-zero")

	// Only the first six colors participate.
	a, b := block(0), block(0)
	b[15] = 0x7FFF
	assert.Equal(t, Hash(a), Hash(b))

	assert.Equal(t, uint16(3|1), Hash([]types.Color{3}))
	assert.Equal(t, uint16(0), Hash(nil))
}

func TestIndex_AddLookupRemove(t *testing.T) {
	idx := New(0)
	idx.Add(0x42, 15)
	idx.Add(0x42, 15)
	require.Equal(t, 1, idx.Len())

	slot, ok := idx.Lookup(0x42, func(int) bool { return true })
	require.True(t, ok)
	assert.Equal(t, 15, slot)

	_, ok = idx.Lookup(0x43, func(int) bool { return true })
	assert.False(t, ok)

	assert.True(t, idx.Remove(0x42, 15))
	assert.False(t, idx.Remove(0x42, 15))
	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, Stats{}, idx.Stats())
}

func TestIndex_CollisionsAreVerified(t *testing.T) {
	idx := New(16)
	idx.Add(0x10, 15)
	idx.Add(0x10, 14)
	idx.Add(0x10, 13)

	assert.Equal(t, Stats{Entries: 3, Buckets: 1, Collisions: 3}, idx.Stats())

	// Only slot 14 holds the requested content.
	slot, ok := idx.Lookup(0x10, func(s int) bool { return s == 14 })
	require.True(t, ok)
	assert.Equal(t, 14, slot)

	_, ok = idx.Lookup(0x10, func(int) bool { return false })
	assert.False(t, ok, "a hash hit without a content match is a miss")

	// Removing one colliding slot keeps the others reachable.
	require.True(t, idx.Remove(0x10, 15))
	assert.True(t, idx.Contains(0x10, 14))
	assert.True(t, idx.Contains(0x10, 13))
	assert.False(t, idx.Contains(0x10, 15))
}

func TestIndex_EntriesAndReset(t *testing.T) {
	idx := New(16)
	idx.Add(0x30, 13)
	idx.Add(0x20, 15)
	idx.Add(0x30, 14)

	assert.Equal(t, []Entry{{0x30, 13}, {0x30, 14}, {0x20, 15}}, idx.Entries())

	idx.Reset()
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Entries())
}
