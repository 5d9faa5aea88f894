package decompress

import "github.com/joshuapare/palettekit/internal/buf"

// LZ77 expands a BIOS LZ77 stream (type 0x10).
//
// Each flag byte describes the next eight blocks, most significant bit first.
// A clear bit is a literal byte. A set bit is a two-byte back-reference:
// length (b0>>4)+3 and displacement ((b0&0xF)<<8 | b1)+1.
func LZ77(data []byte) ([]byte, error) {
	const name = "lz77"
	_, size, err := header(name, data, typeLZ77)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, size)
	pos := headerSize
	for len(out) < size {
		if !buf.Has(data, pos, 1) {
			return nil, truncated(name, len(out), size)
		}
		flags := data[pos]
		pos++

		for bit := 7; bit >= 0 && len(out) < size; bit-- {
			if flags&(1<<bit) == 0 {
				if !buf.Has(data, pos, 1) {
					return nil, truncated(name, len(out), size)
				}
				out = append(out, data[pos])
				pos++
				continue
			}

			ref, ok := buf.Slice(data, pos, 2)
			if !ok {
				return nil, truncated(name, len(out), size)
			}
			b0, b1 := ref[0], ref[1]
			pos += 2
			length := int(b0>>4) + 3
			disp := (int(b0&0x0F)<<8 | int(b1)) + 1
			if disp > len(out) {
				return nil, truncated(name, len(out), size)
			}
			from := len(out) - disp
			for i := 0; i < length && len(out) < size; i++ {
				out = append(out, out[from+i])
			}
		}
	}
	return out, nil
}
