package bitset

import "encoding/gob"

// Serialization delegates to the backing chunk array, so the encoded form is
// the raw chunk sequence with capacity intact. Trailing zero chunks are not
// normalized away: capacity is part of the observable state.

// MarshalJSON encodes the backing chunks as a JSON array.
func (b *BitSet[I]) MarshalJSON() ([]byte, error) {
	return b.chunks.MarshalJSON()
}

// UnmarshalJSON replaces the backing chunks with the decoded array.
func (b *BitSet[I]) UnmarshalJSON(data []byte) error {
	return b.chunks.UnmarshalJSON(data)
}

// Compile time checks to ensure BitSet satisfies the gob interfaces.
var (
	_ gob.GobEncoder = (*BitSet[int])(nil)
	_ gob.GobDecoder = (*BitSet[int])(nil)
)

// GobEncode encodes the backing chunks.
func (b *BitSet[I]) GobEncode() ([]byte, error) {
	return b.chunks.GobEncode()
}

// GobDecode replaces the backing chunks with the decoded ones.
func (b *BitSet[I]) GobDecode(data []byte) error {
	return b.chunks.GobDecode(data)
}
