package decompress

import "github.com/joshuapare/palettekit/internal/buf"

// RunLength expands a BIOS run-length stream (type 0x30).
//
// Flag bit 7 set: the next byte repeats (flag&0x7F)+3 times.
// Flag bit 7 clear: (flag&0x7F)+1 literal bytes follow.
func RunLength(data []byte) ([]byte, error) {
	const name = "run_length"
	_, size, err := header(name, data, typeRunLength)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, size)
	pos := headerSize
	for len(out) < size {
		if !buf.Has(data, pos, 1) {
			return nil, truncated(name, len(out), size)
		}
		flag := data[pos]
		pos++

		if flag&0x80 != 0 {
			if !buf.Has(data, pos, 1) {
				return nil, truncated(name, len(out), size)
			}
			v := data[pos]
			pos++
			for n := int(flag&0x7F) + 3; n > 0 && len(out) < size; n-- {
				out = append(out, v)
			}
			continue
		}

		n := int(flag&0x7F) + 1
		run, ok := buf.Slice(data, pos, n)
		if !ok {
			return nil, truncated(name, len(out), size)
		}
		out = append(out, run[:min(n, size-len(out))]...)
		pos += n
	}
	return out, nil
}
