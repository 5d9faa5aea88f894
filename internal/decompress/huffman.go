package decompress

import (
	"github.com/joshuapare/palettekit/internal/buf"
	"github.com/joshuapare/palettekit/pkg/types"
)

const (
	nodeOffsetMask = 0x3F
	nodeLeaf0      = 0x80
	nodeLeaf1      = 0x40
)

// Huffman expands a BIOS Huffman stream (type 0x24 for 4-bit units, 0x28 for
// 8-bit units).
//
// Byte 4 holds the tree size t; the tree table spans (t+1)*2 bytes from
// byte 4 and its root node is byte 5. A node at address a with offset o has
// children at (a&^1)+o*2+2 and the byte after it; bits 7 and 6 mark the first
// and second child as leaves. The bitstream follows the tree as 32-bit
// little-endian words read from the most significant bit. Decoded units are
// packed into bytes from the least significant bit.
func Huffman(data []byte) ([]byte, error) {
	const name = "huffman"
	typ, size, err := header(name, data, typeHuffman)
	if err != nil {
		return nil, err
	}
	unitBits := int(typ & 0x0F)
	var unitMask byte
	switch unitBits {
	case 4:
		unitMask = 0x0F
	case 8:
		unitMask = 0xFF
	default:
		return nil, types.Errorf(types.ErrKindCorruptData, "%s: unsupported unit size %d", name, unitBits)
	}
	if len(data) <= headerSize+1 {
		return nil, truncated(name, 0, size)
	}

	treeEnd := headerSize + (int(data[headerSize])+1)*2
	if treeEnd > len(data) {
		return nil, types.Errorf(types.ErrKindCorruptData, "%s: tree exceeds stream", name)
	}

	const root = headerSize + 1
	out := make([]byte, 0, size)
	var (
		acc     byte
		accBits int
		node    = root
	)

	for pos := treeEnd; len(out) < size; pos += 4 {
		if !buf.Has(data, pos, 4) {
			return nil, truncated(name, len(out), size)
		}
		word := buf.U32LE(data[pos:])

		for bit := 31; bit >= 0 && len(out) < size; bit-- {
			n := data[node]
			child := (node &^ 1) + int(n&nodeOffsetMask)*2 + 2
			leaf := n&nodeLeaf0 != 0
			if word&(1<<bit) != 0 {
				child++
				leaf = n&nodeLeaf1 != 0
			}
			if child >= treeEnd {
				return nil, types.Errorf(types.ErrKindCorruptData, "%s: node 0x%X points outside tree", name, node)
			}
			if !leaf {
				node = child
				continue
			}

			node = root
			acc |= (data[child] & unitMask) << accBits
			accBits += unitBits
			if accBits == 8 {
				out = append(out, acc)
				acc, accBits = 0, 0
			}
		}
	}
	return out, nil
}
