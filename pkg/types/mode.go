package types

// BPP is the bits-per-pixel mode of a palette.
type BPP uint8

const (
	// BPP4 palettes have 16 colors and occupy exactly one slot.
	BPP4 BPP = iota
	// BPP8 palettes have up to 256 colors and occupy a prefix of the bank.
	BPP8
)

func (b BPP) String() string {
	if b == BPP8 {
		return "bpp8"
	}
	return "bpp4"
}

// Compression identifies how the colors of a palette item are stored.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionLZ77
	CompressionRunLength
	CompressionHuffman
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ77:
		return "lz77"
	case CompressionRunLength:
		return "run_length"
	case CompressionHuffman:
		return "huffman"
	default:
		return "unknown"
	}
}
