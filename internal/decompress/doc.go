// Package decompress expands color data stored in the GBA BIOS compression
// formats: LZ77 (type 0x10), Huffman (0x24 and 0x28) and run-length (0x30).
//
// Every stream starts with a 4-byte header: the type byte followed by the
// 24-bit little-endian decompressed size. Decoders stop as soon as that many
// bytes have been produced; a stream that ends early is ErrCorruptData.
//
// No Go library implements these formats, so the decoders are written here
// against the GBATEK descriptions.
package decompress
