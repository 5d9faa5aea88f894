// Package effect is the validated, caller-facing form of the palette color
// effects. Strengths are types.Fixed values in [0, 1]; anything outside that
// domain, a short destination or an invalid rotation fails with
// types.ErrInvalidParameter before dst is touched.
//
// src and dst may alias.
package effect

import (
	"github.com/joshuapare/palettekit/internal/colorops"
	"github.com/joshuapare/palettekit/pkg/types"
)

// Brightness adds value to every channel, saturating at full intensity.
func Brightness(src []types.Color, value types.Fixed, dst []types.Color) error {
	if err := check("brightness", src, value, dst); err != nil {
		return err
	}
	colorops.Brightness(src, value.Level(), dst)
	return nil
}

// Contrast pushes every channel away from mid gray by value.
func Contrast(src []types.Color, value types.Fixed, dst []types.Color) error {
	if err := check("contrast", src, value, dst); err != nil {
		return err
	}
	colorops.Contrast(src, value.Level(), dst)
	return nil
}

// Intensity scales every channel up by 1+value.
func Intensity(src []types.Color, value types.Fixed, dst []types.Color) error {
	if err := check("intensity", src, value, dst); err != nil {
		return err
	}
	colorops.Intensity(src, value.Level(), dst)
	return nil
}

// Invert flips every channel.
func Invert(src, dst []types.Color) error {
	if err := checkDst(src, dst); err != nil {
		return err
	}
	colorops.Invert(src, dst)
	return nil
}

// Grayscale blends every color towards its gray by intensity. The color count
// must be even, matching the 32-bit word writes of palette RAM.
func Grayscale(src []types.Color, intensity types.Fixed, dst []types.Color) error {
	if len(src)%2 != 0 {
		return types.Errorf(types.ErrKindInvalidParameter, "invalid grayscale colors count: %d", len(src))
	}
	if err := check("grayscale intensity", src, intensity, dst); err != nil {
		return err
	}
	colorops.Grayscale(src, intensity.Level(), dst)
	return nil
}

// HueShift rotates the hue of every color by intensity of a full turn.
func HueShift(src []types.Color, intensity types.Fixed, dst []types.Color) error {
	if err := check("hue shift intensity", src, intensity, dst); err != nil {
		return err
	}
	colorops.HueShift(src, intensity.Level(), dst)
	return nil
}

// Blend writes a weighted average of a and b; weight 0 is all a.
func Blend(a, b []types.Color, weight types.Fixed, dst []types.Color) error {
	if len(b) < len(a) {
		return types.Errorf(types.ErrKindInvalidParameter, "invalid blend colors count: %d < %d", len(b), len(a))
	}
	if err := check("blend weight", a, weight, dst); err != nil {
		return err
	}
	colorops.Blend(a, b, weight.Level(), dst)
	return nil
}

// Fade blends every color towards fadeColor by intensity. Full intensity
// writes fadeColor exactly.
func Fade(src []types.Color, fadeColor types.Color, intensity types.Fixed, dst []types.Color) error {
	if err := check("fade intensity", src, intensity, dst); err != nil {
		return err
	}
	colorops.Fade(src, fadeColor, intensity.Level(), dst)
	return nil
}

// Rotate cyclically rotates src right by count positions, or left when count
// is negative. |count| must be lower than len(src).
func Rotate(src []types.Color, count int, dst []types.Color) error {
	n := len(src)
	if n > types.BankColors {
		return types.Errorf(types.ErrKindInvalidParameter, "invalid rotate colors count: %d", n)
	}
	if count <= -n || count >= n {
		return types.Errorf(types.ErrKindInvalidParameter, "invalid rotate count: %d (colors: %d)", count, n)
	}
	if err := checkDst(src, dst); err != nil {
		return err
	}
	colorops.Rotate(src, count, dst)
	return nil
}

func check(name string, src []types.Color, f types.Fixed, dst []types.Color) error {
	if err := types.CheckUnit(name, f); err != nil {
		return err
	}
	return checkDst(src, dst)
}

func checkDst(src, dst []types.Color) error {
	if len(dst) < len(src) {
		return types.Errorf(types.ErrKindInvalidParameter, "destination too short: %d < %d", len(dst), len(src))
	}
	return nil
}
