// Package snapshot serializes the raw backing state of densevec structures
// into a self-describing binary format.
//
// Layout:
//   - 16-byte fixed header: magic "DVS0", format version, flags, compression
//   - codec name (length-prefixed) so files can be opened with the codec
//     that produced them
//   - length-prefixed payload, optionally block-compressed with zstd or lz4
//   - CRC32 (IEEE) of the stored payload for corruption detection
//
// The payload is the codec encoding of the raw backing buffer, trailing
// zero-valued slots included: capacity is observable state and must
// round-trip exactly.
//
// CRC32 is not cryptographically secure. It detects accidental corruption,
// not tampering.
package snapshot
