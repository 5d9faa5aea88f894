//go:build !linux && !darwin && !freebsd

package transfer

import "github.com/joshuapare/palettekit/pkg/types"

// OpenMapped is not available on this platform.
func OpenMapped(path string) (*MappedPort, error) {
	return nil, types.Errorf(types.ErrKindUnsupported, "memory-mapped palette port %s", path)
}

func (p *MappedPort) flushRange(_ []byte) error { return types.ErrUnsupported }

func (p *MappedPort) unmap() error { return nil }
