package transfer

import (
	"context"
	"fmt"

	"github.com/joshuapare/palettekit/dirty"
	"github.com/joshuapare/palettekit/internal/buf"
	"github.com/joshuapare/palettekit/pkg/types"
)

// MappedPort is a palette RAM image backed by a memory-mapped file.
//
// Transfers write straight into the mapping and record the touched bytes;
// Flush pushes them to the file.
type MappedPort struct {
	path    string
	data    []byte
	dirty   *dirty.Tracker // byte ranges, page aligned
	flushes int
}

var (
	_ Port               = (*MappedPort)(nil)
	_ dirty.DirtyTracker = (*MappedPort)(nil)
)

// Transfer implements Port.
func (p *MappedPort) Transfer(address uint32, colors []types.Color) error {
	if p.data == nil {
		return fmt.Errorf("transfer %s: port closed", p.path)
	}
	off, err := ramOffset(address, len(colors))
	if err != nil {
		return err
	}
	n := buf.PutColors(p.data[off:], colors)
	p.Add(off, n)
	return nil
}

// Add marks [off, off+length) bytes of the image as needing a flush.
func (p *MappedPort) Add(off, length int) { p.dirty.Add(off, length) }

// Bytes returns the mapped image. The slice is invalid after Close.
func (p *MappedPort) Bytes() []byte { return p.data }

// Path returns the backing file path.
func (p *MappedPort) Path() string { return p.path }

// Flushes returns how many msync calls were issued.
func (p *MappedPort) Flushes() int { return p.flushes }

// Flush writes every dirty range back to the file. It checks ctx before
// starting and between ranges; ranges not yet flushed stay dirty.
func (p *MappedPort) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.data == nil || p.dirty.Empty() {
		return nil
	}

	ranges := p.dirty.Coalesce()
	p.dirty.Reset()
	for i, r := range ranges {
		if err := ctx.Err(); err != nil {
			for _, rest := range ranges[i:] {
				p.dirty.Add(rest.Off, rest.Len)
			}
			return err
		}
		end := min(r.End(), len(p.data))
		if r.Off >= end {
			continue
		}
		if err := p.flushRange(p.data[r.Off:end]); err != nil {
			for _, rest := range ranges[i:] {
				p.dirty.Add(rest.Off, rest.Len)
			}
			return fmt.Errorf("transfer %s: flush: %w", p.path, err)
		}
		p.flushes++
	}
	return nil
}

// Close flushes pending ranges and unmaps the file. Closing twice is a no-op.
func (p *MappedPort) Close() error {
	if p.data == nil {
		return nil
	}
	flushErr := p.Flush(context.Background())
	if err := p.unmap(); err != nil {
		return fmt.Errorf("transfer %s: unmap: %w", p.path, err)
	}
	p.data = nil
	return flushErr
}
