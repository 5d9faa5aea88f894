// Package writer exposes sinks for whole-image emission: PNG previews and
// palette RAM dumps.
package writer

// Sink receives a complete image in one call.
type Sink interface {
	Emit(buf []byte) error
}

var (
	_ Sink = (*FileWriter)(nil)
	_ Sink = (*MemWriter)(nil)
)
