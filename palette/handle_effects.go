package palette

import (
	"github.com/joshuapare/palettekit/pkg/types"
)

// Per-palette effects. Strengths are compared by their 5-bit level, so a set
// that doesn't change the output doesn't schedule any recomputation.

// Inverted reports whether the palette's colors are inverted.
func (h *Handle) Inverted() bool { return h.view().inverted }

// SetInverted sets whether the palette's colors are inverted.
func (h *Handle) SetInverted(inverted bool) error {
	if h.released {
		return errReleased
	}
	s := h.slot()
	if s.inverted != inverted {
		s.inverted = inverted
		h.bank.markDirty(h.id)
	}
	return nil
}

// GrayscaleIntensity returns the palette's grayscale strength in [0, 1].
func (h *Handle) GrayscaleIntensity() types.Fixed { return h.view().grayscaleIntensity }

// SetGrayscaleIntensity sets the palette's grayscale strength in [0, 1].
func (h *Handle) SetGrayscaleIntensity(intensity types.Fixed) error {
	return h.setLevel("grayscale intensity", &h.slot().grayscaleIntensity, intensity)
}

// HueShiftIntensity returns the palette's hue shift in [0, 1] turns.
func (h *Handle) HueShiftIntensity() types.Fixed { return h.view().hueShiftIntensity }

// SetHueShiftIntensity sets the palette's hue shift in [0, 1] turns.
func (h *Handle) SetHueShiftIntensity(intensity types.Fixed) error {
	return h.setLevel("hue shift intensity", &h.slot().hueShiftIntensity, intensity)
}

// FadeColor returns the color the palette fades towards.
func (h *Handle) FadeColor() types.Color { return h.view().fadeColor }

// FadeIntensity returns the palette's fade strength in [0, 1].
func (h *Handle) FadeIntensity() types.Fixed { return h.view().fadeIntensity }

// SetFadeColor sets the color the palette fades towards. It only schedules a
// recomputation when the fade is visible.
func (h *Handle) SetFadeColor(c types.Color) error {
	if h.released {
		return errReleased
	}
	s := h.slot()
	changed := s.fadeColor != c && s.fadeIntensity.Level() != 0
	s.fadeColor = c
	if changed {
		h.bank.markDirty(h.id)
	}
	return nil
}

// SetFadeIntensity sets the palette's fade strength in [0, 1].
func (h *Handle) SetFadeIntensity(intensity types.Fixed) error {
	return h.setLevel("fade intensity", &h.slot().fadeIntensity, intensity)
}

// SetFade sets the fade color and strength at once.
func (h *Handle) SetFade(c types.Color, intensity types.Fixed) error {
	if h.released {
		return errReleased
	}
	if err := types.CheckUnit("fade intensity", intensity); err != nil {
		return err
	}
	s := h.slot()
	changed := s.fadeColor != c || s.fadeIntensity.Level() != intensity.Level()
	s.fadeColor = c
	s.fadeIntensity = intensity
	if changed {
		h.bank.markDirty(h.id)
	}
	return nil
}

// RotateCount returns how many colors the rotate range is rotated to the right.
func (h *Handle) RotateCount() int { return h.view().rotateCount }

// SetRotateCount sets how many colors the rotate range is rotated to the
// right. Negative counts rotate to the left; |count| must be lower than the
// rotate range size.
func (h *Handle) SetRotateCount(count int) error {
	if h.released {
		return errReleased
	}
	s := h.slot()
	if count <= -s.rotateRangeSize || count >= s.rotateRangeSize {
		return types.Errorf(types.ErrKindInvalidParameter, "invalid rotate count: %d - %d", count, s.rotateRangeSize)
	}
	if s.rotateCount != count {
		s.rotateCount = count
		h.bank.markDirty(h.id)
	}
	return nil
}

// RotateRangeStart returns the index of the first rotated color.
func (h *Handle) RotateRangeStart() int { return h.view().rotateRangeStart }

// RotateRangeSize returns the number of rotated colors.
func (h *Handle) RotateRangeSize() int { return h.view().rotateRangeSize }

// SetRotateRange sets which colors are rotated: start in [0, colors-2], size
// in [2, colors] and start+size within the palette. The current rotate count
// must remain valid for the new size.
func (h *Handle) SetRotateRange(start, size int) error {
	if h.released {
		return errReleased
	}
	s := h.slot()
	n := s.colorsCount()
	switch {
	case start < 0 || start > n-2:
		return types.Errorf(types.ErrKindInvalidParameter, "invalid rotate range start: %d - %d", start, n)
	case size < 2 || size > n:
		return types.Errorf(types.ErrKindInvalidParameter, "invalid rotate range size: %d - %d", size, n)
	case start+size > n:
		return types.Errorf(types.ErrKindInvalidParameter, "invalid rotate range: %d - %d - %d", start, size, n)
	case s.rotateCount <= -size || s.rotateCount >= size:
		return types.Errorf(types.ErrKindInvalidParameter, "invalid rotate count: %d - %d", s.rotateCount, size)
	}

	if s.rotateRangeStart == start && s.rotateRangeSize == size {
		return nil
	}
	s.rotateRangeStart = start
	s.rotateRangeSize = size
	if s.rotateCount != 0 {
		h.bank.markDirty(h.id)
	}
	return nil
}

func (h *Handle) setLevel(name string, field *types.Fixed, v types.Fixed) error {
	if h.released {
		return errReleased
	}
	if err := types.CheckUnit(name, v); err != nil {
		return err
	}
	changed := field.Level() != v.Level()
	*field = v
	if changed {
		h.bank.markDirty(h.id)
	}
	return nil
}
