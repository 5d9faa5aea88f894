//go:build linux || darwin || freebsd

package transfer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/palettekit/internal/buf"
	"github.com/joshuapare/palettekit/pkg/types"
)

func TestMappedPort_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palram.bin")
	p, err := OpenMapped(path)
	require.NoError(t, err)
	require.Len(t, p.Bytes(), types.PaletteRAMSize)

	colors := block(7)
	require.NoError(t, p.Transfer(types.SpritePaletteAddress+32, colors))
	require.NoError(t, p.Flush(context.Background()))
	assert.Equal(t, 1, p.Flushes())

	// Nothing dirty: no msync.
	require.NoError(t, p.Flush(context.Background()))
	assert.Equal(t, 1, p.Flushes())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, raw, types.PaletteRAMSize)
	assert.Equal(t, colors, buf.ColorsFromBytes(raw[0x220:0x240]))

	// Reopening keeps the image.
	p, err = OpenMapped(path)
	require.NoError(t, err)
	defer p.Close()
	assert.Equal(t, raw, p.Bytes())
}

func TestMappedPort_FlushCanceled(t *testing.T) {
	p, err := OpenMapped(filepath.Join(t.TempDir(), "palram.bin"))
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Transfer(types.BGPaletteAddress, block(1)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Flush(ctx), context.Canceled)
	assert.Equal(t, 0, p.Flushes())

	require.NoError(t, p.Flush(context.Background()))
	assert.Equal(t, 1, p.Flushes())
}

func TestMappedPort_Closed(t *testing.T) {
	p, err := OpenMapped(filepath.Join(t.TempDir(), "palram.bin"))
	require.NoError(t, err)
	require.NoError(t, p.Close())
	assert.Error(t, p.Transfer(types.BGPaletteAddress, block(1)))
	assert.NoError(t, p.Flush(context.Background()))
}
