package densevec

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// DefaultVec is a mapping from non-negative integer indexes to values where
// every index initially maps to the zero value of T.
//
// The backing buffer is grown on demand by GetMut and never shrinks, so a
// single write to a large index keeps that memory for the lifetime of the
// structure. Capacity only ever increases, even across Clear.
//
// The zero value is an empty array ready for use. DefaultVec is not safe for
// concurrent use; callers that need that must synchronize externally.
type DefaultVec[T any, I constraints.Integer] struct {
	buf []T
}

// New creates an empty DefaultVec.
func New[T any, I constraints.Integer]() *DefaultVec[T, I] {
	return &DefaultVec[T, I]{}
}

// grow is the cold path of GetMut. It reallocates the buffer so that index i
// is addressable and claims the whole new allocation, filling every new slot
// with the zero value. Amortized O(1) per access for increasing indexes.
//
//go:noinline
func (v *DefaultVec[T, I]) grow(i int) {
	buf := slices.Grow(v.buf, i+1-len(v.buf))
	var zero T
	for len(buf) < cap(buf) {
		buf = append(buf, zero)
	}
	v.buf = buf
	if i >= len(v.buf) {
		panic("densevec: index not addressable after grow")
	}
}

// GetMut returns a pointer to the slot at index i, growing the buffer if the
// index is not yet addressable. Newly created slots hold the zero value.
//
// A negative index panics. Allocation failure is fatal, as with any Go
// allocation.
func (v *DefaultVec[T, I]) GetMut(i I) *T {
	idx := toIndex(i)
	if idx >= len(v.buf) {
		v.grow(idx)
	}
	return &v.buf[idx]
}

// Get returns the value at index i, or the zero value of T if the index has
// never been grown to. It never mutates the structure.
func (v *DefaultVec[T, I]) Get(i I) T {
	idx := int(i)
	if idx < 0 || idx >= len(v.buf) {
		var zero T
		return zero
	}
	return v.buf[idx]
}

// Clear resets every existing slot to the zero value. Capacity is unchanged.
// O(capacity).
func (v *DefaultVec[T, I]) Clear() {
	clear(v.buf)
}

// Capacity returns the number of currently addressable slots.
func (v *DefaultVec[T, I]) Capacity() int {
	return len(v.buf)
}

// Values returns an iterator over all Capacity() values in index order.
// The sequence is restartable: each range starts from index 0.
func (v *DefaultVec[T, I]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.buf {
			if !yield(x) {
				return
			}
		}
	}
}

// Mutable returns an iterator over pointers to all Capacity() slots in index
// order. Writes through the pointers are visible immediately.
func (v *DefaultVec[T, I]) Mutable() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range v.buf {
			if !yield(&v.buf[i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the array.
func (v *DefaultVec[T, I]) Clone() *DefaultVec[T, I] {
	return &DefaultVec[T, I]{buf: slices.Clone(v.buf)}
}

func toIndex[I constraints.Integer](i I) int {
	if i < 0 {
		panic("densevec: negative index")
	}
	return int(i)
}
