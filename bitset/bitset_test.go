package bitset

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"slices"
	"testing"

	"github.com/hupe1980/densevec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elements[I int | uint32](b *BitSet[I]) []I {
	var out []I
	for x := range b.Iterator() {
		out = append(out, x)
	}
	return out
}

func TestInsertRemoveIterate(t *testing.T) {
	s := New[int]()

	assert.True(t, s.Insert(0))
	assert.False(t, s.Insert(0))
	assert.True(t, s.Insert(42))
	assert.Equal(t, []int{0, 42}, elements(s))

	assert.True(t, s.Remove(0))
	assert.Equal(t, []int{42}, elements(s))
}

func TestRemoveOnEmpty(t *testing.T) {
	s := New[int]()

	assert.False(t, s.Remove(0))
	assert.False(t, s.Remove(0))

	s.Insert(0)
	assert.True(t, s.Remove(0))
	assert.False(t, s.Remove(0))
}

func TestSet(t *testing.T) {
	s := New[int]()

	assert.False(t, s.Set(0, false))
	assert.False(t, s.Set(0, true))
	assert.True(t, s.Set(0, true))
	assert.True(t, s.Set(0, false))
	assert.False(t, s.Contains(0))
}

func TestContainsNeverGrows(t *testing.T) {
	s := New[int]()

	assert.False(t, s.Contains(1_000_000))
	assert.Equal(t, 0, s.CapacityBits())

	s.Insert(3)
	capBits := s.CapacityBits()
	assert.False(t, s.Contains(1_000_000))
	assert.Equal(t, capBits, s.CapacityBits())
}

func TestContainsMutGrows(t *testing.T) {
	s := New[int]()

	assert.False(t, s.ContainsMut(100))
	assert.GreaterOrEqual(t, s.CapacityBits(), 101)

	s.Insert(100)
	assert.True(t, s.ContainsMut(100))
}

func TestNegativeElement(t *testing.T) {
	s := New[int]()

	assert.False(t, s.Contains(-1))
	assert.Panics(t, func() { s.Insert(-1) })
}

func TestClearKeepsCapacity(t *testing.T) {
	s := Of(1, 40, 1000)
	capBits := s.CapacityBits()

	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, capBits, s.CapacityBits())
	for _, x := range []int{1, 40, 1000} {
		assert.False(t, s.Contains(x))
	}
}

func TestChunkBoundary(t *testing.T) {
	// 0 and 63 live in different chunks; each must address its own bit.
	s := New[int]()

	assert.True(t, s.Insert(0))
	assert.True(t, s.Insert(63))
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(63))

	assert.True(t, s.Remove(63))
	assert.True(t, s.Contains(0), "removing 63 must not disturb bit 0")
	assert.False(t, s.Contains(63))

	// Last and first bit of the same chunk.
	s2 := Of(31, 32)
	assert.Equal(t, []int{31, 32}, elements(s2))
}

func TestIteratorAscendingAndRestartable(t *testing.T) {
	s := Of(5, 130, 2, 64)

	assert.Equal(t, []int{2, 5, 64, 130}, elements(s))
	assert.Equal(t, []int{2, 5, 64, 130}, elements(s), "iterator must be restartable")

	// Early break must not corrupt later iterations.
	for range s.Iterator() {
		break
	}
	assert.Equal(t, []int{2, 5, 64, 130}, elements(s))
}

func TestCountAndIsEmpty(t *testing.T) {
	s := New[int]()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Count())

	s.Insert(7)
	s.Insert(7)
	s.Insert(99)

	assert.False(t, s.IsEmpty())
	assert.Equal(t, 2, s.Count())
}

func TestOfAndCollect(t *testing.T) {
	a := Of(3, 1, 2, 1)
	b := Collect(slices.Values([]int{1, 2, 3}))

	assert.True(t, a.Equal(b))
	assert.Equal(t, []int{1, 2, 3}, elements(a))
}

func TestInsertSeq(t *testing.T) {
	s := Of(1)
	s.InsertSeq(slices.Values([]int{1, 5, 9}))

	assert.Equal(t, []int{1, 5, 9}, elements(s))
}

func TestClone(t *testing.T) {
	s := Of(4, 8)

	c := s.Clone()
	c.Insert(15)

	assert.False(t, s.Contains(15), "clone must not alias the original chunks")
	assert.True(t, c.Contains(4))
}

func TestString(t *testing.T) {
	assert.Equal(t, "{}", New[int]().String())
	assert.Equal(t, "{0, 42}", Of(42, 0).String())
}

func TestCustomElementType(t *testing.T) {
	type nodeID uint32
	s := New[nodeID]()

	assert.True(t, s.Insert(nodeID(70)))
	assert.True(t, s.Contains(nodeID(70)))
	assert.Equal(t, []nodeID{70}, func() []nodeID {
		var out []nodeID
		for x := range s.Iterator() {
			out = append(out, x)
		}
		return out
	}())
}

func TestRandomizedAgainstModel(t *testing.T) {
	rng := testutil.NewRNG(4711)
	s := New[int]()
	model := map[int]bool{}

	for i := 0; i < 10_000; i++ {
		x := rng.Intn(2048)
		switch rng.Intn(3) {
		case 0:
			assert.Equal(t, !model[x], s.Insert(x))
			model[x] = true
		case 1:
			assert.Equal(t, model[x], s.Remove(x))
			model[x] = false
		case 2:
			assert.Equal(t, model[x], s.Contains(x))
		}
	}

	var want []int
	for x, ok := range model {
		if ok {
			want = append(want, x)
		}
	}
	slices.Sort(want)
	assert.Equal(t, want, elements(s))
}

func TestInsertOrderIndependent(t *testing.T) {
	rng := testutil.NewRNG(2024)
	elems := rng.Elements(200, 4096)

	a := Of(elems...)

	b := New[int]()
	for _, i := range rng.Perm(len(elems)) {
		b.Insert(elems[i])
	}

	// Chunk capacity may differ between growth paths, but the logical
	// contents must not.
	assert.Equal(t, elements(a), elements(b))
	assert.Equal(t, a.Count(), b.Count())
}

func TestJSONRoundTrip(t *testing.T) {
	s := Of(0, 42)
	s.ContainsMut(500) // grow past the last set bit, leaving trailing zero chunks

	data, err := json.Marshal(s)
	require.NoError(t, err)

	got := New[int]()
	require.NoError(t, json.Unmarshal(data, got))

	assert.True(t, s.Equal(got))
	assert.Equal(t, s.CapacityBits(), got.CapacityBits(), "trailing zero chunks must round-trip")
}

func TestGobRoundTrip(t *testing.T) {
	s := Of(1, 31, 32, 1000)

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(s))

	got := New[int]()
	require.NoError(t, gob.NewDecoder(&buf).Decode(got))

	assert.True(t, s.Equal(got))
	assert.Equal(t, []int{1, 31, 32, 1000}, elements(got))
}
