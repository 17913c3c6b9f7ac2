package bitset

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/hupe1980/densevec"
	"golang.org/x/exp/constraints"
)

// ChunkBits is the width in bits of a single backing chunk.
const ChunkBits = 32

// BitSet is an unbounded set of non-negative integers stored as packed bits.
//
// It grows its backing buffer whenever an element that would not otherwise
// fit is added and never shrinks, so it can waste memory if a very large
// element is added and then removed.
//
// The zero value is an empty set ready for use. BitSet is not safe for
// concurrent use.
type BitSet[I constraints.Integer] struct {
	chunks densevec.DefaultVec[uint32, int]
}

// New creates an empty BitSet.
func New[I constraints.Integer]() *BitSet[I] {
	return &BitSet[I]{}
}

// Of creates a BitSet holding the given elements. Duplicates collapse.
func Of[I constraints.Integer](xs ...I) *BitSet[I] {
	b := New[I]()
	for _, x := range xs {
		b.Insert(x)
	}
	return b
}

// Collect creates a BitSet from a sequence of elements.
// The result is order-independent; duplicates collapse.
func Collect[I constraints.Integer](seq iter.Seq[I]) *BitSet[I] {
	b := New[I]()
	b.InsertSeq(seq)
	return b
}

// split maps an element to its chunk index and the mask selecting its bit.
func split(x int) (int, uint32) {
	return x / ChunkBits, 1 << (uint(x) % ChunkBits)
}

func elem[I constraints.Integer](x I) int {
	if x < 0 {
		panic("bitset: negative element")
	}
	return int(x)
}

// Insert adds an element to the set, growing the backing buffer if needed.
//
// It returns true if the element was absent, false if it was already present.
func (b *BitSet[I]) Insert(x I) bool {
	chunkIdx, mask := split(elem(x))
	chunk := b.chunks.GetMut(chunkIdx)
	absent := *chunk&mask == 0
	*chunk |= mask
	return absent
}

// Remove deletes an element from the set.
//
// It returns true if the element was present. The chunk addressing x is
// allocated if it does not exist yet, but a remove from a never-grown region
// always reports false.
func (b *BitSet[I]) Remove(x I) bool {
	chunkIdx, mask := split(elem(x))
	chunk := b.chunks.GetMut(chunkIdx)
	present := *chunk&mask != 0
	*chunk &^= mask
	return present
}

// Set inserts x if v is true, or removes it otherwise.
//
// It returns whether the set used to contain x.
func (b *BitSet[I]) Set(x I, v bool) bool {
	chunkIdx, mask := split(elem(x))
	chunk := b.chunks.GetMut(chunkIdx)
	present := *chunk&mask != 0
	if v {
		*chunk |= mask
	} else {
		*chunk &^= mask
	}
	return present
}

// Contains reports whether the set contains x. It never grows the backing
// buffer: elements beyond the current capacity are absent by definition.
func (b *BitSet[I]) Contains(x I) bool {
	if x < 0 {
		return false
	}
	chunkIdx, mask := split(int(x))
	return b.chunks.Get(chunkIdx)&mask != 0
}

// ContainsMut is Contains plus a growth guarantee: the chunk addressing x is
// allocated before returning. Useful for call sites that will mutate near x
// right after.
func (b *BitSet[I]) ContainsMut(x I) bool {
	chunkIdx, mask := split(elem(x))
	return *b.chunks.GetMut(chunkIdx)&mask != 0
}

// InsertSeq adds every element of the sequence to the set.
func (b *BitSet[I]) InsertSeq(seq iter.Seq[I]) {
	for x := range seq {
		b.Insert(x)
	}
}

// Clear removes all elements without releasing capacity.
func (b *BitSet[I]) Clear() {
	b.chunks.Clear()
}

// Count returns the number of elements in the set. O(capacity).
func (b *BitSet[I]) Count() int {
	n := 0
	for chunk := range b.chunks.Values() {
		n += bits.OnesCount32(chunk)
	}
	return n
}

// IsEmpty reports whether the set holds no elements. O(capacity).
func (b *BitSet[I]) IsEmpty() bool {
	for chunk := range b.chunks.Values() {
		if chunk != 0 {
			return false
		}
	}
	return true
}

// CapacityBits returns the number of addressable bits, i.e. one past the
// largest element the set has ever grown to accommodate.
func (b *BitSet[I]) CapacityBits() int {
	return b.chunks.Capacity() * ChunkBits
}

// Iterator returns a lazy sequence of all elements in ascending order.
// The sequence is restartable: each range starts from the smallest element.
//
// Run time is proportional to CapacityBits, not to Count.
//
// Bit positions are converted back to I, so every present element must be
// representable in I. That holds for sets populated through Insert and Set,
// but a UnionWith or SymmetricDifferenceWith against a set holding elements
// beyond I's range leaves bits whose conversion wraps.
func (b *BitSet[I]) Iterator() iter.Seq[I] {
	return func(yield func(I) bool) {
		n := b.chunks.Capacity()
		for i := 0; i < n; i++ {
			chunk := b.chunks.Get(i)
			for chunk != 0 {
				offset := bits.TrailingZeros32(chunk)
				if !yield(I(i*ChunkBits + offset)) {
					return
				}
				chunk &^= 1 << uint(offset)
			}
		}
	}
}

// Clone returns a deep copy of the set.
func (b *BitSet[I]) Clone() *BitSet[I] {
	return &BitSet[I]{chunks: *b.chunks.Clone()}
}

// String renders the set as "{e1, e2, ...}" in ascending element order.
func (b *BitSet[I]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for x := range b.Iterator() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d", x)
	}
	sb.WriteByte('}')
	return sb.String()
}
