// Package densevec provides an auto-growing dense array that maps
// non-negative integer indexes to values, where every index that has never
// been written reads as the zero value.
//
// DefaultVec trades memory for access speed: the backing buffer grows
// geometrically on demand and never shrinks, so random access and insert are
// amortized O(1) without pre-sizing. This makes it a good fit for dense
// integer-keyed tables such as visit markers, counters keyed by small IDs,
// or the chunk storage of the bitset subpackage.
//
// # Quick Start
//
//	var v densevec.DefaultVec[int, int]
//	*v.GetMut(100) += 5
//	fmt.Println(v.Get(100)) // 5
//	fmt.Println(v.Get(50))  // 0 (zero value, no growth)
//
// The zero value of DefaultVec is an empty, ready-to-use array.
//
// Reads via Get never allocate; writes go through GetMut, which grows the
// buffer to cover the requested index. Capacity is monotonically
// non-decreasing, even across Clear.
//
// See the bitset subpackage for an unbounded bit set built on DefaultVec,
// and the snapshot subpackage for self-describing binary serialization of
// either structure.
package densevec
