package bitset

// Chunks is a read-only view of a bit set's backing chunks. Every BitSet
// instantiation implements it, which lets the in-place algebra below combine
// sets whose element types differ but share the chunk representation.
//
// Chunk must return 0 for indexes at or beyond NumChunks, matching the
// implicit all-zero chunks beyond a set's capacity.
type Chunks interface {
	// NumChunks returns the number of allocated chunks.
	NumChunks() int
	// Chunk returns the chunk at index i, or 0 if i is out of range.
	Chunk(i int) uint32
}

var _ Chunks = (*BitSet[int])(nil)

// NumChunks returns the number of allocated backing chunks.
func (b *BitSet[I]) NumChunks() int {
	return b.chunks.Capacity()
}

// Chunk returns the backing chunk at index i, or 0 if i is out of range.
func (b *BitSet[I]) Chunk(i int) uint32 {
	return b.chunks.Get(i)
}

// The growth policies below are asymmetric on purpose: operations that can
// only clear bits already in b never grow its allocation, while operations
// that can introduce new bits grow b first so nothing is lost.

// IntersectWith sets b to the intersection of b and other.
//
// Chunks of other beyond its length read as zero, so intersecting with a
// shorter set correctly empties the excess. Never grows b.
func (b *BitSet[I]) IntersectWith(other Chunks) {
	n := b.chunks.Capacity()
	for i := 0; i < n; i++ {
		*b.chunks.GetMut(i) &= other.Chunk(i)
	}
}

// UnionWith sets b to the union of b and other.
//
// Grows b first if other has more chunks.
func (b *BitSet[I]) UnionWith(other Chunks) {
	m := other.NumChunks()
	if m > b.chunks.Capacity() {
		b.chunks.GetMut(m - 1)
	}
	for i := 0; i < m; i++ {
		*b.chunks.GetMut(i) |= other.Chunk(i)
	}
}

// DifferenceWith removes every element of other from b.
//
// Chunks of b beyond other's length have nothing to subtract and are left
// unchanged. Never grows b.
func (b *BitSet[I]) DifferenceWith(other Chunks) {
	n := min(b.chunks.Capacity(), other.NumChunks())
	for i := 0; i < n; i++ {
		*b.chunks.GetMut(i) &^= other.Chunk(i)
	}
}

// SymmetricDifferenceWith sets b to the symmetric difference of b and other.
//
// Grows b first if other has more chunks.
func (b *BitSet[I]) SymmetricDifferenceWith(other Chunks) {
	m := other.NumChunks()
	if m > b.chunks.Capacity() {
		b.chunks.GetMut(m - 1)
	}
	for i := 0; i < m; i++ {
		*b.chunks.GetMut(i) ^= other.Chunk(i)
	}
}

// Equal reports whether b and other have identical chunk sequences.
//
// Equality is strict: a set grown to more chunks is never equal to one with
// fewer, even when the extra chunks are all zero. Two sets holding the same
// elements can therefore compare unequal after mixed-growth usage; compare
// logical contents with b.DifferenceWith/Count if that matters.
func (b *BitSet[I]) Equal(other Chunks) bool {
	n := b.chunks.Capacity()
	if n != other.NumChunks() {
		return false
	}
	for i := 0; i < n; i++ {
		if b.chunks.Get(i) != other.Chunk(i) {
			return false
		}
	}
	return true
}
