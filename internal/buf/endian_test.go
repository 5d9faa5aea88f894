package buf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/palettekit/pkg/types"
)

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x10, 0x23, 0x45, 0x67}

	assert.Equal(t, uint16(0x2310), U16LE(data))
	assert.Equal(t, uint32(0x67452310), U32LE(data))
	assert.Equal(t, uint32(0x674523), U24LE(data))

	short := []byte{0xAA}
	assert.Zero(t, U16LE(short))
	assert.Zero(t, U32LE(short))
	assert.Zero(t, U24LE(short))

	out := make([]byte, 2)
	PutU16LE(out, 0x7FFF)
	assert.Equal(t, []byte{0xFF, 0x7F}, out)
	PutU16LE(short, 0x1234) // too short, must not panic
	assert.Equal(t, []byte{0xAA}, short)
}

func TestColorsRoundTrip(t *testing.T) {
	colors := []types.Color{types.RGB(31, 0, 0), types.RGB(0, 31, 0), types.RGB(1, 2, 3)}

	raw := AppendColors(nil, colors)
	require.Len(t, raw, 6)
	assert.Equal(t, colors, ColorsFromBytes(raw))

	// Odd trailing byte is ignored.
	assert.Equal(t, colors, ColorsFromBytes(append(raw, 0x55)))

	dst := make([]byte, 4)
	n := PutColors(dst, colors)
	assert.Equal(t, 4, n)
	assert.Equal(t, raw[:4], dst)
}

func TestSlice(t *testing.T) {
	b := []byte{1, 2, 3, 4}

	s, ok := Slice(b, 1, 2)
	require.True(t, ok)
	assert.Equal(t, []byte{2, 3}, s)

	_, ok = Slice(b, 3, 2)
	assert.False(t, ok)
	_, ok = Slice(b, -1, 1)
	assert.False(t, ok)
	assert.True(t, Has(b, 0, 4))
	assert.False(t, Has(b, 4, 1))
}
