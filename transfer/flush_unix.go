//go:build linux || freebsd

package transfer

import "golang.org/x/sys/unix"

// flushRange syncs one page-aligned sub-slice of the mapping.
func (p *MappedPort) flushRange(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}
