//go:build linux || darwin || freebsd

package transfer

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/palettekit/dirty"
	"github.com/joshuapare/palettekit/pkg/types"
)

// OpenMapped maps the palette RAM image stored at path, creating the file
// and growing it to the palette RAM size when needed. Existing contents are
// kept.
func OpenMapped(path string) (*MappedPort, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	defer f.Close() // the mapping keeps the pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() < types.PaletteRAMSize {
		if err := f.Truncate(types.PaletteRAMSize); err != nil {
			return nil, fmt.Errorf("transfer %s: grow: %w", path, err)
		}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, types.PaletteRAMSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("transfer %s: mmap: %w", path, err)
	}
	return &MappedPort{
		path:  path,
		data:  data,
		dirty: dirty.NewTracker(unix.Getpagesize()),
	}, nil
}

func (p *MappedPort) unmap() error {
	return unix.Munmap(p.data)
}
