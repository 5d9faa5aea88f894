package types

// ============================================================================
// Palette Hardware Geometry
// ============================================================================
// These constants describe the GBA palette RAM. Each bank (sprites and
// backgrounds) owns 512 bytes: 16 slots of 16 RGB555 colors.

const (
	// PaletteSlots is the number of 16-color slots in a bank.
	PaletteSlots = 16

	// ColorsPerSlot is the number of colors held by one slot.
	ColorsPerSlot = 16

	// BankColors is the total number of colors held by a bank.
	BankColors = PaletteSlots * ColorsPerSlot

	// BPP4Colors is the exact number of colors of a 4 bits-per-pixel palette.
	BPP4Colors = ColorsPerSlot

	// DisplayHeight is the number of scanlines; H-Blank color rows hold one
	// color per scanline.
	DisplayHeight = 160

	// MaxEffectLevel is the quantized strength of an effect at 1.0.
	MaxEffectLevel = 32

	// MaxChannel is the maximum value of a 5-bit color channel.
	MaxChannel = 31
)

// Palette RAM addresses of each bank.
const (
	// BGPaletteAddress is the base address of background palette RAM.
	BGPaletteAddress uint32 = 0x05000000

	// SpritePaletteAddress is the base address of sprite (OBJ) palette RAM.
	SpritePaletteAddress uint32 = 0x05000200

	// PaletteRAMSize is the size in bytes of the whole palette RAM (both banks).
	PaletteRAMSize = 2 * BankColors * 2
)
