//go:build darwin

package transfer

import "golang.org/x/sys/unix"

// flushRange syncs the whole mapping. msync on macOS requires the address
// the region was mapped at, so sub-slices cannot be passed.
func (p *MappedPort) flushRange(_ []byte) error {
	return unix.Msync(p.data, unix.MS_SYNC)
}
