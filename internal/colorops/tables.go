package colorops

import (
	"math"

	"github.com/joshuapare/palettekit/pkg/types"
)

const (
	levels   = types.MaxEffectLevel + 1
	channels = types.MaxChannel + 1

	// hueShiftOne is 1.0 in the hue shift matrix fixed point format.
	hueShiftOne = 256
)

var (
	contrastLUT  [levels][channels]uint8
	intensityLUT [levels][channels]uint8
	hueShiftLUT  [levels][9]int32
)

func init() {
	for v := 0; v < levels; v++ {
		for ch := 0; ch < channels; ch++ {
			// ch*(1+v/32) - 31*(v/32)/2, in 1/64 units.
			c := ch*(types.MaxEffectLevel+v)*2 - types.MaxChannel*v + 32
			if c < 0 {
				c = 0
			}
			contrastLUT[v][ch] = uint8(clampChannel(c / 64))

			i := (ch*(types.MaxEffectLevel+v) + 16) / 32
			intensityLUT[v][ch] = uint8(clampChannel(i))
		}

		angle := 2 * math.Pi * float64(v) / float64(types.MaxEffectLevel)
		c, s := math.Cos(angle), math.Sin(angle)
		matrix := [9]float64{
			0.299 + 0.701*c + 0.168*s, 0.587 - 0.587*c + 0.330*s, 0.114 - 0.114*c - 0.497*s,
			0.299 - 0.299*c - 0.328*s, 0.587 + 0.413*c + 0.035*s, 0.114 - 0.114*c + 0.292*s,
			0.299 - 0.300*c + 1.250*s, 0.587 - 0.588*c - 1.050*s, 0.114 + 0.886*c - 0.203*s,
		}
		for k, m := range matrix {
			hueShiftLUT[v][k] = int32(math.Round(m * hueShiftOne))
		}
	}
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > types.MaxChannel {
		return types.MaxChannel
	}
	return v
}
