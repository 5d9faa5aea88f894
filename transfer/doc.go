// Package transfer pushes committed palette colors to palette RAM.
//
// A Port receives colors at a palette RAM address. MemoryPort keeps the
// 1 KiB image in memory; MappedPort keeps it in a memory-mapped file so an
// external viewer (or emulator) can observe it, flushing only the byte
// ranges that were written.
//
// Committer ties a palette.Bank to a Port:
//
//	port := transfer.NewMemoryPort()
//	c := transfer.NewCommitter(port, transfer.DefaultOptions())
//	bank.Update()
//	if _, err := c.Commit(bank); err != nil {
//	    return err
//	}
//
// Committer remembers an xxhash fingerprint of every slot it transferred, so
// slots at either end of the commit window whose content did not change are
// not sent again.
//
// Nothing in this package is safe for concurrent use.
package transfer
