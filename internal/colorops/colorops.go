package colorops

import "github.com/joshuapare/palettekit/pkg/types"

// Color is the RGB555 color type the primitives operate on.
type Color = types.Color

// Brightness adds level to every channel, saturating at 31.
func Brightness(src []Color, level int, dst []Color) {
	for i, c := range src {
		r, g, b := c.Channels()
		dst[i] = types.RGB(min(r+level, types.MaxChannel), min(g+level, types.MaxChannel),
			min(b+level, types.MaxChannel))
	}
}

// Contrast maps every channel through the contrast table row for level.
func Contrast(src []Color, level int, dst []Color) {
	row := &contrastLUT[level]
	for i, c := range src {
		r, g, b := c.Channels()
		dst[i] = types.RGB(int(row[r]), int(row[g]), int(row[b]))
	}
}

// Intensity maps every channel through the intensity table row for level.
func Intensity(src []Color, level int, dst []Color) {
	row := &intensityLUT[level]
	for i, c := range src {
		r, g, b := c.Channels()
		dst[i] = types.RGB(int(row[r]), int(row[g]), int(row[b]))
	}
}

// Invert flips every channel (31 - channel).
func Invert(src []Color, dst []Color) {
	for i, c := range src {
		dst[i] = c ^ types.ColorMask
	}
}

// Gray returns the luma-equivalent gray of c.
func Gray(c Color) Color {
	r, g, b := c.Channels()
	gray := (r*0x4C + g*0x96 + b*0x1E + 0x80) >> 8
	return types.RGB(gray, gray, gray)
}

// Grayscale blends every color towards its gray by level/32. Level 32 writes
// the gray directly.
func Grayscale(src []Color, level int, dst []Color) {
	if level == types.MaxEffectLevel {
		for i, c := range src {
			dst[i] = Gray(c)
		}
		return
	}
	for i, c := range src {
		dst[i] = blendColor(c, Gray(c), level)
	}
}

// HueShift rotates the hue of every color by level/32 of a full turn.
func HueShift(src []Color, level int, dst []Color) {
	m := &hueShiftLUT[level]
	for i, c := range src {
		r, g, b := int32(c.R()), int32(c.G()), int32(c.B())
		nr := (m[0]*r + m[1]*g + m[2]*b + hueShiftOne/2) >> 8
		ng := (m[3]*r + m[4]*g + m[5]*b + hueShiftOne/2) >> 8
		nb := (m[6]*r + m[7]*g + m[8]*b + hueShiftOne/2) >> 8
		dst[i] = types.RGB(clampChannel(int(nr)), clampChannel(int(ng)), clampChannel(int(nb)))
	}
}

// Blend writes a weighted average of a and b: weight 0 is all a, weight 32 all b.
// b must hold at least len(a) colors.
func Blend(a, b []Color, weight int, dst []Color) {
	for i, c := range a {
		dst[i] = blendColor(c, b[i], weight)
	}
}

// Fade blends every color towards fadeColor by level/32. Level 32 fills dst
// with fadeColor.
func Fade(src []Color, fadeColor Color, level int, dst []Color) {
	if level == types.MaxEffectLevel {
		for i := range src {
			dst[i] = fadeColor
		}
		return
	}
	for i, c := range src {
		dst[i] = blendColor(c, fadeColor, level)
	}
}

// Rotate cyclically rotates src right by count positions (left when count is
// negative). |count| must be lower than len(src), and len(src) at most
// types.BankColors.
func Rotate(src []Color, count int, dst []Color) {
	n := len(src)
	if n == 0 {
		return
	}
	var scratch [types.BankColors]Color
	copy(scratch[:n], src)

	shift := ((count % n) + n) % n
	for i := 0; i < n; i++ {
		dst[(i+shift)%n] = scratch[i]
	}
}

func blendColor(a, b Color, weight int) Color {
	inv := types.MaxEffectLevel - weight
	ar, ag, ab := a.Channels()
	br, bg, bb := b.Channels()
	return types.RGB(
		(ar*inv+br*weight+16)>>5,
		(ag*inv+bg*weight+16)>>5,
		(ab*inv+bb*weight+16)>>5,
	)
}
