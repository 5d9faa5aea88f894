package palette

import (
	"github.com/joshuapare/palettekit/internal/colorops"
	"github.com/joshuapare/palettekit/pkg/types"
)

// slot is the metadata of one physical palette slot. For a multi-slot BPP8
// run only the first slot carries usages and effect state; the others are
// only locked.
type slot struct {
	usages     int
	slotsCount int
	bpp8       bool
	locked     bool
	hash       uint16
	dirty      bool

	inverted           bool
	grayscaleIntensity types.Fixed
	hueShiftIntensity  types.Fixed
	fadeColor          types.Color
	fadeIntensity      types.Fixed
	rotateCount        int
	rotateRangeStart   int
	rotateRangeSize    int
}

func newSlot() slot {
	return slot{slotsCount: 1, rotateRangeStart: 1}
}

func (s *slot) reset() { *s = newSlot() }

func (s *slot) active() bool { return s.usages > 0 }

func (s *slot) colorsCount() int { return s.slotsCount * types.ColorsPerSlot }

// applyEffects runs the per-palette stack in place:
// hue shift, invert, grayscale, fade.
func (s *slot) applyEffects(colors []types.Color) {
	if level := s.hueShiftIntensity.Level(); level != 0 {
		colorops.HueShift(colors, level, colors)
	}
	if s.inverted {
		colorops.Invert(colors, colors)
	}
	if level := s.grayscaleIntensity.Level(); level != 0 {
		colorops.Grayscale(colors, level, colors)
	}
	if level := s.fadeIntensity.Level(); level != 0 {
		colorops.Fade(colors, s.fadeColor, level, colors)
	}
}

// rotate permutes the rotate range of colors by the slot's rotate count.
func (s *slot) rotate(colors []types.Color) {
	if s.rotateCount == 0 {
		return
	}
	window := colors[s.rotateRangeStart : s.rotateRangeStart+s.rotateRangeSize]
	colorops.Rotate(window, s.rotateCount, window)
}
