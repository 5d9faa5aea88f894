// Package buf contains little-endian helpers for moving RGB555 colors in and
// out of raw byte streams (compressed assets, palette RAM images).
package buf

import (
	"encoding/binary"

	"github.com/joshuapare/palettekit/pkg/types"
)

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U24LE reads the 24-bit size field stored in bytes 1-3 of a BIOS
// compression header.
func U24LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return uint32(b[1]) | uint32(b[2])<<8 | uint32(b[3])<<16
}

// PutU16LE writes v to b[0:2]. It is a no-op when b is too short.
func PutU16LE(b []byte, v uint16) {
	if len(b) < 2 {
		return
	}
	binary.LittleEndian.PutUint16(b, v)
}

// ColorsFromBytes decodes len(b)/2 little-endian colors. A trailing odd byte is ignored.
func ColorsFromBytes(b []byte) []types.Color {
	colors := make([]types.Color, len(b)/2)
	for i := range colors {
		colors[i] = types.Color(binary.LittleEndian.Uint16(b[i*2:]))
	}
	return colors
}

// PutColors encodes colors into dst as little-endian half words and returns
// the number of bytes written. Colors that don't fit are dropped.
func PutColors(dst []byte, colors []types.Color) int {
	n := min(len(colors), len(dst)/2)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(colors[i]))
	}
	return n * 2
}

// AppendColors appends colors to dst as little-endian half words.
func AppendColors(dst []byte, colors []types.Color) []byte {
	for _, c := range colors {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(c))
	}
	return dst
}
