package writer

// MemWriter keeps the last emitted image in memory.
type MemWriter struct {
	Buf   []byte
	Emits int
}

// Emit replaces Buf with a copy of buf.
func (w *MemWriter) Emit(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	w.Emits++
	return nil
}
