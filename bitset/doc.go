// Package bitset provides an unbounded bit set over an auto-growing array of
// 32-bit chunks.
//
// Architecture:
//   - One densevec.DefaultVec of uint32 chunks as the only allocation
//   - An element x lives at chunk x/32, bit x%32
//   - Chunks beyond the current capacity are implicitly all-zero
//   - Growth is lazy and monotonic: capacity never shrinks, not even on Clear
//
// The set is parameterized over the element type, so dense domain-specific
// identifiers (node IDs, row numbers) can be used directly without casts.
// In-place set algebra works across element types through the Chunks view,
// since all instantiations share the same chunk representation.
//
// Iteration cost is proportional to the largest element the set has ever
// grown to, not to the number of present elements. That is a documented
// trade-off, not an oversight: callers rely on iteration being a flat scan
// of the backing buffer.
package bitset
