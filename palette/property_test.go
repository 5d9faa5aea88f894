package palette_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/palettekit/palette"
	"github.com/joshuapare/palettekit/palette/verify"
	"github.com/joshuapare/palettekit/pkg/types"
)

func contents(seed int) []types.Color {
	out := make([]types.Color, types.BPP4Colors)
	for i := range out {
		out[i] = types.RGB(seed, i, seed^i)
	}
	return out
}

// TestProperty_RandomCreateRelease drives a bank with random create and
// release sequences and checks the bank invariants after every step.
func TestProperty_RandomCreateRelease(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1337} {
		rng := rand.New(rand.NewSource(seed))
		bank := palette.NewBank(palette.DefaultOptions(palette.KindSprite))

		var live []*palette.Handle
		refs := map[int]int{} // content seed → live handles

		for step := 0; step < 2000; step++ {
			switch op := rng.Intn(10); {
			case op < 5:
				content := rng.Intn(24)
				before := bank.Snapshot()
				h, err := bank.CreateOptional(palette.NewItem(contents(content), types.BPP4))
				require.NoError(t, err)
				if h == nil {
					require.Equal(t, before, bank.Snapshot(), "seed %d step %d: failed create mutated the bank", seed, step)
					require.Equal(t, types.BankColors, bank.UsedColorsCount(), "only a full bank rejects a bpp4 palette")

					_, err = bank.Create(palette.NewItem(contents(content), types.BPP4))
					require.True(t, errors.Is(err, types.ErrOutOfPaletteMemory))
					require.Equal(t, before, bank.Snapshot())
					break
				}
				live = append(live, h)
				refs[content]++
				require.Equal(t, refs[content], h.Usages(), "seed %d step %d", seed, step)

			case op < 6:
				if rng.Intn(2) == 0 {
					n := (1 + rng.Intn(8)) * types.ColorsPerSlot
					colors := make([]types.Color, n)
					for i := range colors {
						colors[i] = types.Color(rng.Intn(types.ColorMask + 1))
					}
					before := bank.Snapshot()
					h, err := bank.CreateOptional(palette.NewItem(colors, types.BPP8))
					require.NoError(t, err)
					if h == nil {
						require.Equal(t, before, bank.Snapshot())
						break
					}
					live = append(live, h)
				}

			default:
				if len(live) == 0 {
					break
				}
				i := rng.Intn(len(live))
				h := live[i]
				if h.BPP() == types.BPP4 {
					for content := range refs {
						if slices.Equal(h.Colors(), contents(content)) {
							refs[content]--
							break
						}
					}
				}
				h.Release()
				live = append(live[:i], live[i+1:]...)
			}

			snap := bank.Snapshot()
			require.NoError(t, verify.AllInvariants(snap), "seed %d step %d", seed, step)
			require.NoError(t, verify.Dedup(snap), "seed %d step %d", seed, step)
			require.LessOrEqual(t, bank.UsedColorsCount(), types.BankColors)

			if step%16 == 0 {
				bank.Update()
				bank.ResetCommitData()
			}
		}

		for _, h := range live {
			h.Release()
		}
		require.Equal(t, 0, bank.UsedColorsCount())
		require.NoError(t, verify.AllInvariants(bank.Snapshot()))
	}
}
