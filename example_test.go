package densevec_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hupe1980/densevec"
	"github.com/hupe1980/densevec/bitset"
	"github.com/hupe1980/densevec/snapshot"
)

// Example_defaultVec demonstrates the auto-growing array.
func Example_defaultVec() {
	var v densevec.DefaultVec[int, int]

	*v.GetMut(100) += 5 // grows to cover index 100

	fmt.Println(v.Get(100))
	fmt.Println(v.Get(50)) // never written: zero value, no growth
	fmt.Println(v.Capacity() >= 101)
	// Output:
	// 5
	// 0
	// true
}

// Example_bitSet demonstrates the dynamic bit set.
func Example_bitSet() {
	s := bitset.New[int]()

	fmt.Println(s.Insert(0))
	fmt.Println(s.Insert(0))
	s.Insert(42)
	fmt.Println(s)

	s.Remove(0)
	fmt.Println(s)
	// Output:
	// true
	// false
	// {0, 42}
	// {42}
}

// Example_setAlgebra demonstrates in-place set operations.
func Example_setAlgebra() {
	a := bitset.Of(0, 1)
	b := bitset.Of(0, 42)

	a.UnionWith(b)
	fmt.Println(a)

	a.DifferenceWith(b)
	fmt.Println(a)
	// Output:
	// {0, 1, 42}
	// {1}
}

// Example_snapshot demonstrates serializing a bit set with compression.
func Example_snapshot() {
	s := bitset.Of(1, 31, 32, 1000)

	var buf bytes.Buffer
	if err := snapshot.Write(&buf, s, func(o *snapshot.Options) {
		o.Compression = snapshot.CompressionZSTD
	}); err != nil {
		log.Fatal(err)
	}

	restored := bitset.New[int]()
	if err := snapshot.Read(&buf, restored); err != nil {
		log.Fatal(err)
	}

	fmt.Println(s.Equal(restored))
	// Output: true
}
