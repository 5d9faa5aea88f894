package action

import (
	"github.com/joshuapare/palettekit/palette"
	"github.com/joshuapare/palettekit/pkg/types"
)

// Property is a Fixed value an action reads and writes.
type Property struct {
	Get func() types.Fixed
	Set func(types.Fixed) error
}

// BoolProperty is a boolean value an action reads and writes.
type BoolProperty struct {
	Get func() bool
	Set func(bool) error
}

// GrayscaleIntensity binds the grayscale strength of a palette.
func GrayscaleIntensity(h *palette.Handle) Property {
	return Property{Get: h.GrayscaleIntensity, Set: h.SetGrayscaleIntensity}
}

// HueShiftIntensity binds the hue shift of a palette.
func HueShiftIntensity(h *palette.Handle) Property {
	return Property{Get: h.HueShiftIntensity, Set: h.SetHueShiftIntensity}
}

// FadeIntensity binds the fade strength of a palette.
func FadeIntensity(h *palette.Handle) Property {
	return Property{Get: h.FadeIntensity, Set: h.SetFadeIntensity}
}

// Inverted binds the inversion flag of a palette.
func Inverted(h *palette.Handle) BoolProperty {
	return BoolProperty{Get: h.Inverted, Set: h.SetInverted}
}

// Brightness binds the global brightness of a bank.
func Brightness(b *palette.Bank) Property {
	return Property{Get: b.Brightness, Set: b.SetBrightness}
}

// Contrast binds the global contrast of a bank.
func Contrast(b *palette.Bank) Property {
	return Property{Get: b.Contrast, Set: b.SetContrast}
}

// Intensity binds the global intensity of a bank.
func Intensity(b *palette.Bank) Property {
	return Property{Get: b.Intensity, Set: b.SetIntensity}
}

// BankGrayscaleIntensity binds the global grayscale strength of a bank.
func BankGrayscaleIntensity(b *palette.Bank) Property {
	return Property{Get: b.GrayscaleIntensity, Set: b.SetGrayscaleIntensity}
}

// BankHueShiftIntensity binds the global hue shift of a bank.
func BankHueShiftIntensity(b *palette.Bank) Property {
	return Property{Get: b.HueShiftIntensity, Set: b.SetHueShiftIntensity}
}

// BankFadeIntensity binds the global fade strength of a bank.
func BankFadeIntensity(b *palette.Bank) Property {
	return Property{Get: b.FadeIntensity, Set: b.SetFadeIntensity}
}

// BankInverted binds the global inversion flag of a bank.
func BankInverted(b *palette.Bank) BoolProperty {
	return BoolProperty{
		Get: b.Inverted,
		Set: func(v bool) error {
			b.SetInverted(v)
			return nil
		},
	}
}
