package types

import (
	"fmt"
	"image/color"
)

// Color is a 15-bit RGB555 color as stored in palette RAM:
// bits 0-4 red, 5-9 green, 10-14 blue. Bit 15 is ignored by the hardware.
type Color uint16

// ColorMask covers the three 5-bit channels of a Color.
const ColorMask = 0x7FFF

// RGB builds a Color from 5-bit channels. Channels are masked to [0, 31].
func RGB(r, g, b int) Color {
	return Color(r&MaxChannel | (g&MaxChannel)<<5 | (b&MaxChannel)<<10)
}

// R returns the red channel in [0, 31].
func (c Color) R() int { return int(c) & MaxChannel }

// G returns the green channel in [0, 31].
func (c Color) G() int { return int(c>>5) & MaxChannel }

// B returns the blue channel in [0, 31].
func (c Color) B() int { return int(c>>10) & MaxChannel }

// Channels returns the red, green and blue channels.
func (c Color) Channels() (r, g, b int) {
	return c.R(), c.G(), c.B()
}

// RGBA implements image/color.Color. 5-bit channels are expanded to 8 bits
// by replicating the high bits, then to 16 bits.
func (c Color) RGBA() (r, g, b, a uint32) {
	expand := func(v int) uint32 {
		x := uint32(v<<3 | v>>2)
		return x | x<<8
	}
	return expand(c.R()), expand(c.G()), expand(c.B()), 0xFFFF
}

func (c Color) String() string {
	return fmt.Sprintf("rgb555(%d,%d,%d)", c.R(), c.G(), c.B())
}

// ColorModel converts any color.Color into a Color by truncating each channel
// to its 5 most significant bits.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if rgb, ok := c.(Color); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return RGB(int(r>>11), int(g>>11), int(b>>11))
})
