package decompress

import (
	"github.com/joshuapare/palettekit/internal/buf"
	"github.com/joshuapare/palettekit/pkg/types"
)

const (
	headerSize = 4

	typeLZ77      = 0x10
	typeHuffman   = 0x20
	typeRunLength = 0x30
	typeMask      = 0xF0
)

// MaxColorBytes is the largest decompressed palette accepted by Colors: a
// full 256-color bank.
const MaxColorBytes = types.BankColors * 2

// Bytes expands data according to kind. CompressionNone returns data as is.
func Bytes(kind types.Compression, data []byte) ([]byte, error) {
	switch kind {
	case types.CompressionNone:
		return data, nil
	case types.CompressionLZ77:
		return LZ77(data)
	case types.CompressionRunLength:
		return RunLength(data)
	case types.CompressionHuffman:
		return Huffman(data)
	default:
		return nil, types.Errorf(types.ErrKindUnknownCompression, "unknown compression type: %d", kind)
	}
}

// Colors expands data according to kind and decodes the result as
// little-endian RGB555 colors.
func Colors(kind types.Compression, data []byte) ([]types.Color, error) {
	if kind != types.CompressionNone && len(data) >= headerSize {
		if size := buf.U24LE(data); size > MaxColorBytes {
			return nil, types.Errorf(types.ErrKindCorruptData,
				"%s: decompressed size %d exceeds palette capacity %d", kind, size, MaxColorBytes)
		}
	}
	raw, err := Bytes(kind, data)
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 {
		return nil, types.Errorf(types.ErrKindCorruptData, "%s: odd colors data size: %d", kind, len(raw))
	}
	return buf.ColorsFromBytes(raw), nil
}

// header validates the BIOS header of data and returns the type byte and the
// decompressed size.
func header(name string, data []byte, want byte) (byte, int, error) {
	if len(data) < headerSize {
		return 0, 0, types.Errorf(types.ErrKindCorruptData, "%s: truncated header", name)
	}
	if data[0]&typeMask != want {
		return 0, 0, types.Errorf(types.ErrKindCorruptData, "%s: unexpected type byte 0x%02X", name, data[0])
	}
	return data[0], int(buf.U24LE(data)), nil
}

func truncated(name string, got, want int) error {
	return types.Errorf(types.ErrKindCorruptData, "%s: stream ended after %d of %d bytes", name, got, want)
}
