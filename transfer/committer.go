package transfer

import (
	"context"
	"log/slog"

	"github.com/cespare/xxhash"

	"github.com/joshuapare/palettekit/internal/buf"
	"github.com/joshuapare/palettekit/internal/logger"
	"github.com/joshuapare/palettekit/palette"
	"github.com/joshuapare/palettekit/pkg/types"
)

// Flusher is implemented by ports that buffer transfers, such as MappedPort.
type Flusher interface {
	Flush(ctx context.Context) error
}

// Result describes one commit.
type Result struct {
	Offset  int // First color index transferred
	Count   int // Colors transferred, 0 when nothing was sent
	Trimmed int // Slots of the window skipped as unchanged
}

// fingerprints holds the hash of every slot last transferred for one bank.
type fingerprints struct {
	sums  [types.PaletteSlots]uint64
	known [types.PaletteSlots]bool
}

// Committer transfers the commit window of banks to a Port.
type Committer struct {
	port    Port
	opts    Options
	last    map[palette.Kind]*fingerprints
	scratch []byte
}

// NewCommitter creates a committer writing to port.
func NewCommitter(port Port, opts Options) *Committer {
	return &Committer{
		port:    port,
		opts:    opts,
		last:    make(map[palette.Kind]*fingerprints, 2),
		scratch: make([]byte, 0, types.ColorsPerSlot*2),
	}
}

func (c *Committer) logger() *slog.Logger {
	if c.opts.Logger != nil {
		return c.opts.Logger
	}
	return logger.L
}

// Invalidate forgets every fingerprint, so the next commit of each bank
// transfers its whole window.
func (c *Committer) Invalidate() {
	clear(c.last)
}

func (c *Committer) slotSum(colors []types.Color) uint64 {
	c.scratch = buf.AppendColors(c.scratch[:0], colors)
	return xxhash.Sum64(c.scratch)
}

// Commit transfers the colors of bank that changed since its last commit
// and resets its commit data. The bank is left untouched when the port
// fails.
func (c *Committer) Commit(bank *palette.Bank) (Result, error) {
	data, ok := bank.RetrieveCommitData()
	if !ok {
		return Result{}, nil
	}

	fp := c.last[bank.Kind()]
	if fp == nil {
		fp = &fingerprints{}
		c.last[bank.Kind()] = fp
	}

	const per = types.ColorsPerSlot
	first := data.Offset / per
	n := data.Count / per
	sums := make([]uint64, n)
	for i := range sums {
		sums[i] = c.slotSum(data.Colors[i*per : (i+1)*per])
	}

	lo, hi := 0, n
	if c.opts.Trim {
		for lo < hi && fp.known[first+lo] && fp.sums[first+lo] == sums[lo] {
			lo++
		}
		for hi > lo && fp.known[first+hi-1] && fp.sums[first+hi-1] == sums[hi-1] {
			hi--
		}
	}

	res := Result{Trimmed: n - (hi - lo)}
	if lo < hi {
		res.Offset = data.Offset + lo*per
		res.Count = (hi - lo) * per
		address := bank.Kind().Address() + uint32(res.Offset*2)
		if err := c.port.Transfer(address, data.Colors[lo*per:hi*per]); err != nil {
			return Result{}, err
		}
		for i := lo; i < hi; i++ {
			fp.sums[first+i] = sums[i]
			fp.known[first+i] = true
		}
	}

	c.logger().Debug("palette commit",
		"bank", bank.Kind().String(),
		"offset", res.Offset,
		"count", res.Count,
		"trimmed_slots", res.Trimmed,
		"global_effects", bank.GlobalEffectsUpdated())
	bank.ResetCommitData()
	return res, nil
}

// CommitAll commits every bank of m, backgrounds first, then flushes the
// port when it buffers transfers.
func (c *Committer) CommitAll(ctx context.Context, m *palette.Manager) error {
	for _, bank := range m.Banks() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := c.Commit(bank); err != nil {
			return err
		}
	}
	if f, ok := c.port.(Flusher); ok {
		return f.Flush(ctx)
	}
	return nil
}
