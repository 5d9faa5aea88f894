package decompress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/palettekit/internal/buf"
	"github.com/joshuapare/palettekit/pkg/types"
)

// lz77Literals builds an LZ77 stream made only of literal blocks.
func lz77Literals(raw []byte) []byte {
	out := []byte{typeLZ77, byte(len(raw)), byte(len(raw) >> 8), byte(len(raw) >> 16)}
	for i := 0; i < len(raw); i += 8 {
		out = append(out, 0x00)
		out = append(out, raw[i:min(i+8, len(raw))]...)
	}
	return out
}

func TestLZ77(t *testing.T) {
	// Two literals, then a 6-byte back-reference at displacement 2.
	stream := []byte{0x10, 0x08, 0x00, 0x00, 0x20, 'A', 'B', 0x30, 0x01}
	out, err := LZ77(stream)
	require.NoError(t, err)
	assert.Equal(t, []byte("ABABABAB"), out)
}

func TestLZ77_Literals(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i * 7)
	}
	out, err := LZ77(lz77Literals(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestRunLength(t *testing.T) {
	stream := []byte{0x30, 0x06, 0x00, 0x00, 0x81, 7, 0x01, 1, 2}
	out, err := RunLength(stream)
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 7, 7, 7, 1, 2}, out)
}

func TestHuffman8(t *testing.T) {
	stream := []byte{0x28, 0x04, 0x00, 0x00, 0x01, 0xC0, 0xAA, 0xBB, 0x00, 0x00, 0x00, 0x40}
	out, err := Huffman(stream)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xAA, 0xAA}, out)
}

func TestHuffman4(t *testing.T) {
	// Leaves 0x3 and 0xC; bits 0110 decode to units 3, C, C, 3.
	stream := []byte{0x24, 0x02, 0x00, 0x00, 0x01, 0xC0, 0x03, 0x0C, 0x00, 0x00, 0x00, 0x60}
	out, err := Huffman(stream)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC3, 0x3C}, out)
}

func TestColors(t *testing.T) {
	want := []types.Color{types.RGB(31, 0, 0), types.RGB(0, 31, 0), types.RGB(0, 0, 31), 0}
	raw := buf.AppendColors(nil, want)

	got, err := Colors(types.CompressionNone, raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = Colors(types.CompressionLZ77, lz77Literals(raw))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		kind types.Compression
		data []byte
		err  error
	}{
		{"unknown kind", types.Compression(9), []byte{0}, types.ErrUnknownCompression},
		{"short header", types.CompressionLZ77, []byte{0x10, 0x08}, types.ErrCorruptData},
		{"wrong type byte", types.CompressionLZ77, []byte{0x30, 0x02, 0x00, 0x00, 0x01, 1, 2}, types.ErrCorruptData},
		{"truncated lz77", types.CompressionLZ77, []byte{0x10, 0x08, 0x00, 0x00, 0x00, 'A'}, types.ErrCorruptData},
		{"bad displacement", types.CompressionLZ77, []byte{0x10, 0x08, 0x00, 0x00, 0x80, 0x30, 0x05}, types.ErrCorruptData},
		{"truncated rle", types.CompressionRunLength, []byte{0x30, 0x08, 0x00, 0x00, 0x81}, types.ErrCorruptData},
		{"truncated rle literal run", types.CompressionRunLength, []byte{0x30, 0x04, 0x00, 0x00, 0x03, 1, 2}, types.ErrCorruptData},
		{"truncated lz77 reference", types.CompressionLZ77, []byte{0x10, 0x08, 0x00, 0x00, 0x40, 'A', 0x00}, types.ErrCorruptData},
		{"truncated huffman", types.CompressionHuffman, []byte{0x28, 0x04, 0x00, 0x00, 0x01, 0xC0, 0xAA, 0xBB}, types.ErrCorruptData},
		{"odd size", types.CompressionRunLength, []byte{0x30, 0x03, 0x00, 0x00, 0x80, 9}, types.ErrCorruptData},
		{"too large", types.CompressionRunLength, []byte{0x30, 0x00, 0x04, 0x00, 0xFF, 0}, types.ErrCorruptData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Colors(tt.kind, tt.data)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
