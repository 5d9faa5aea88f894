package palette

import (
	"github.com/joshuapare/palettekit/internal/colorops"
	"github.com/joshuapare/palettekit/pkg/types"
)

// Global effects apply to every active palette of the bank, after each
// palette's own effects, in this order: brightness, contrast, intensity, hue
// shift, invert, grayscale, fade.

// Brightness returns the global brightness in [0, 1].
func (b *Bank) Brightness() types.Fixed { return b.brightness }

// SetBrightness sets the global brightness in [0, 1].
func (b *Bank) SetBrightness(v types.Fixed) error {
	return b.setGlobalLevel("brightness", &b.brightness, v)
}

// Contrast returns the global contrast in [0, 1].
func (b *Bank) Contrast() types.Fixed { return b.contrast }

// SetContrast sets the global contrast in [0, 1].
func (b *Bank) SetContrast(v types.Fixed) error {
	return b.setGlobalLevel("contrast", &b.contrast, v)
}

// Intensity returns the global intensity in [0, 1].
func (b *Bank) Intensity() types.Fixed { return b.intensity }

// SetIntensity sets the global intensity in [0, 1].
func (b *Bank) SetIntensity(v types.Fixed) error {
	return b.setGlobalLevel("intensity", &b.intensity, v)
}

// Inverted reports whether every palette is inverted.
func (b *Bank) Inverted() bool { return b.inverted }

// SetInverted sets whether every palette is inverted.
func (b *Bank) SetInverted(inverted bool) {
	if b.inverted != inverted {
		b.inverted = inverted
		b.onGlobalEffectUpdated()
	}
}

// GrayscaleIntensity returns the global grayscale strength in [0, 1].
func (b *Bank) GrayscaleIntensity() types.Fixed { return b.grayscaleIntensity }

// SetGrayscaleIntensity sets the global grayscale strength in [0, 1].
func (b *Bank) SetGrayscaleIntensity(v types.Fixed) error {
	return b.setGlobalLevel("grayscale intensity", &b.grayscaleIntensity, v)
}

// HueShiftIntensity returns the global hue shift in [0, 1] turns.
func (b *Bank) HueShiftIntensity() types.Fixed { return b.hueShiftIntensity }

// SetHueShiftIntensity sets the global hue shift in [0, 1] turns.
func (b *Bank) SetHueShiftIntensity(v types.Fixed) error {
	return b.setGlobalLevel("hue shift intensity", &b.hueShiftIntensity, v)
}

// FadeColor returns the color every palette fades towards.
func (b *Bank) FadeColor() types.Color { return b.fadeColor }

// FadeIntensity returns the global fade strength in [0, 1].
func (b *Bank) FadeIntensity() types.Fixed { return b.fadeIntensity }

// SetFadeColor sets the color every palette fades towards.
func (b *Bank) SetFadeColor(c types.Color) {
	changed := b.fadeColor != c && b.fadeIntensity.Level() != 0
	b.fadeColor = c
	if changed {
		b.pending = true
		b.updateGlobalEffects = true
	}
}

// SetFadeIntensity sets the global fade strength in [0, 1].
func (b *Bank) SetFadeIntensity(v types.Fixed) error {
	return b.setGlobalLevel("fade intensity", &b.fadeIntensity, v)
}

// SetFade sets the global fade color and strength at once.
func (b *Bank) SetFade(c types.Color, v types.Fixed) error {
	if err := types.CheckUnit("fade intensity", v); err != nil {
		return err
	}
	changed := b.fadeColor != c || b.fadeIntensity.Level() != v.Level()
	b.fadeColor = c
	b.fadeIntensity = v
	if changed {
		b.onGlobalEffectUpdated()
	}
	return nil
}

// TransparentColor returns the color overriding color 0 of the bank, if any.
func (b *Bank) TransparentColor() (types.Color, bool) {
	return b.transparentColor, b.hasTransparentColor
}

// SetTransparentColor overrides color 0 of the bank with c.
func (b *Bank) SetTransparentColor(c types.Color) {
	if b.hasTransparentColor && b.transparentColor == c {
		return
	}
	b.transparentColor = c
	b.hasTransparentColor = true
	b.onTransparentColorUpdated()
}

// ClearTransparentColor removes the color 0 override.
func (b *Bank) ClearTransparentColor() {
	if !b.hasTransparentColor {
		return
	}
	b.transparentColor = 0
	b.hasTransparentColor = false
	b.onTransparentColorUpdated()
}

// ReloadTransparentColor schedules color 0 to be committed again on the next
// update.
func (b *Bank) ReloadTransparentColor() {
	b.onTransparentColorUpdated()
}

func (b *Bank) onTransparentColorUpdated() {
	b.transparentChanged = true
	b.pending = true
	if b.slots[0].active() {
		b.slots[0].dirty = true
	}
}

// GlobalEffectsEnabled reports whether any global effect has a visible
// strength.
func (b *Bank) GlobalEffectsEnabled() bool { return b.globalEffectsEnabled }

func (b *Bank) setGlobalLevel(name string, field *types.Fixed, v types.Fixed) error {
	if err := types.CheckUnit(name, v); err != nil {
		return err
	}
	changed := field.Level() != v.Level()
	*field = v
	if changed {
		b.onGlobalEffectUpdated()
	}
	return nil
}

func (b *Bank) onGlobalEffectUpdated() {
	b.pending = true
	b.updateGlobalEffects = true
	b.globalEffectsEnabled = b.inverted ||
		b.brightness.Level() != 0 ||
		b.contrast.Level() != 0 ||
		b.intensity.Level() != 0 ||
		b.grayscaleIntensity.Level() != 0 ||
		b.hueShiftIntensity.Level() != 0 ||
		b.fadeIntensity.Level() != 0
}

// applyGlobalEffects runs the global stack in place.
func (b *Bank) applyGlobalEffects(colors []types.Color) {
	if level := b.brightness.Level(); level != 0 {
		colorops.Brightness(colors, level, colors)
	}
	if level := b.contrast.Level(); level != 0 {
		colorops.Contrast(colors, level, colors)
	}
	if level := b.intensity.Level(); level != 0 {
		colorops.Intensity(colors, level, colors)
	}
	if level := b.hueShiftIntensity.Level(); level != 0 {
		colorops.HueShift(colors, level, colors)
	}
	if b.inverted {
		colorops.Invert(colors, colors)
	}
	if level := b.grayscaleIntensity.Level(); level != 0 {
		colorops.Grayscale(colors, level, colors)
	}
	if level := b.fadeIntensity.Level(); level != 0 {
		colorops.Fade(colors, b.fadeColor, level, colors)
	}
}
