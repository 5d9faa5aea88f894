package transfer

import (
	"github.com/joshuapare/palettekit/internal/buf"
	"github.com/joshuapare/palettekit/internal/writer"
	"github.com/joshuapare/palettekit/pkg/types"
)

// Port receives colors written to palette RAM.
type Port interface {
	// Transfer writes colors starting at the given palette RAM address.
	Transfer(address uint32, colors []types.Color) error
}

// ramOffset converts a palette RAM address into a byte offset of the image,
// checking that n colors fit.
func ramOffset(address uint32, n int) (int, error) {
	if address < types.BGPaletteAddress || address&1 != 0 {
		return 0, types.Errorf(types.ErrKindInvalidParameter, "invalid palette address: 0x%08X", address)
	}
	off := int(address - types.BGPaletteAddress)
	end, ok := buf.AddOverflowSafe(off, n*2)
	if !ok || end > types.PaletteRAMSize {
		return 0, types.Errorf(types.ErrKindInvalidParameter,
			"palette transfer out of range: 0x%08X + %d colors", address, n)
	}
	return off, nil
}

// MemoryPort is an in-memory palette RAM image.
type MemoryPort struct {
	ram       [types.PaletteRAMSize]byte
	transfers int
}

// NewMemoryPort returns a zeroed palette RAM image.
func NewMemoryPort() *MemoryPort { return &MemoryPort{} }

// Transfer implements Port.
func (p *MemoryPort) Transfer(address uint32, colors []types.Color) error {
	off, err := ramOffset(address, len(colors))
	if err != nil {
		return err
	}
	buf.PutColors(p.ram[off:], colors)
	p.transfers++
	return nil
}

// Colors returns n colors read back from address.
func (p *MemoryPort) Colors(address uint32, n int) ([]types.Color, error) {
	off, err := ramOffset(address, n)
	if err != nil {
		return nil, err
	}
	return buf.ColorsFromBytes(p.ram[off : off+n*2]), nil
}

// Bytes returns the raw little-endian image. The slice aliases the port.
func (p *MemoryPort) Bytes() []byte { return p.ram[:] }

// Transfers returns how many Transfer calls succeeded.
func (p *MemoryPort) Transfers() int { return p.transfers }

// Dump emits a copy of the whole palette RAM image to sink.
func (p *MemoryPort) Dump(sink writer.Sink) error {
	return sink.Emit(p.ram[:])
}
