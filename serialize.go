package densevec

import (
	"bytes"
	"encoding/gob"

	"github.com/hupe1980/densevec/codec"
)

// Serialization of the raw backing buffer.
//
// Both encodings carry every addressable slot, including trailing zero-valued
// ones: capacity is observable state (it determines iteration and growth
// cost), so it must survive a round trip exactly.

// MarshalJSON encodes the backing buffer as a JSON array of Capacity()
// elements.
func (v *DefaultVec[T, I]) MarshalJSON() ([]byte, error) {
	return codec.Default.Marshal(v.buf)
}

// UnmarshalJSON replaces the backing buffer with the decoded array.
func (v *DefaultVec[T, I]) UnmarshalJSON(data []byte) error {
	var buf []T
	if err := codec.Default.Unmarshal(data, &buf); err != nil {
		return err
	}
	v.buf = buf
	return nil
}

// Compile time checks to ensure DefaultVec satisfies the gob interfaces.
var (
	_ gob.GobEncoder = (*DefaultVec[int, int])(nil)
	_ gob.GobDecoder = (*DefaultVec[int, int])(nil)
)

// GobEncode encodes the backing buffer.
func (v *DefaultVec[T, I]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)

	if err := encoder.Encode(v.buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GobDecode replaces the backing buffer with the decoded one.
func (v *DefaultVec[T, I]) GobDecode(data []byte) error {
	decoder := gob.NewDecoder(bytes.NewBuffer(data))

	return decoder.Decode(&v.buf)
}
