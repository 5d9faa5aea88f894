package palette

import (
	"log/slog"

	"github.com/joshuapare/palettekit/pkg/types"
)

// Kind identifies which hardware palette a bank drives.
type Kind uint8

const (
	// KindSprite is the object (sprite) palette at 0x05000200.
	KindSprite Kind = iota

	// KindBackground is the background palette at 0x05000000. Its color 0 is
	// the screen backdrop, which is what the transparent color overrides.
	KindBackground
)

func (k Kind) String() string {
	if k == KindBackground {
		return "background"
	}
	return "sprite"
}

// Address returns the palette RAM address the bank is committed to.
func (k Kind) Address() uint32 {
	if k == KindBackground {
		return types.BGPaletteAddress
	}
	return types.SpritePaletteAddress
}

// Options configures a palette bank.
type Options struct {
	// Kind selects the hardware palette the bank drives.
	// Default: KindSprite
	Kind Kind

	// Logger receives allocation and status records. When nil the
	// process-wide logger (internal/logger) is used.
	// Default: nil
	Logger *slog.Logger
}

// DefaultOptions returns the options for a bank of the given kind.
func DefaultOptions(kind Kind) Options {
	return Options{Kind: kind}
}
