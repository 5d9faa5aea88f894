// Package index provides the content index used to deduplicate BPP4 palettes.
//
// # Overview
//
// A bank holds at most 16 BPP4 palettes. Before claiming a new slot the bank
// asks the index whether a slot with identical colors already exists, and
// shares it instead.
//
// # Hash
//
// Hash is deliberately weak and fast: the sum of the first three 32-bit
// words of a color block (colors packed two per word, little-endian), OR'd
// with the color count and truncated to 16 bits. The OR guarantees a
// non-zero hash for every non-empty block, so zero means "no entry".
//
// # Collisions
//
// Different blocks can share a hash. The index keeps every slot registered
// under a hash in its bucket, and Lookup only accepts a candidate once the
// caller's match function has compared the full colors:
//
//	h := index.Hash(colors)
//	slot, ok := idx.Lookup(h, func(slot int) bool {
//	    return slices.Equal(bank.colors(slot), colors)
//	})
//
// Because no entry is ever replaced, the index is complete: every active BPP4
// slot can be reached through its hash, and no full-bank scan is needed on a
// miss. palette/verify checks this mechanically.
//
// # Thread Safety
//
// Index instances are not thread-safe. The owning bank serializes access.
package index
