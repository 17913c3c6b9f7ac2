package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Elements returns num distinct pseudo-random elements in [0, bound),
// in ascending order. Locks only once per call.
func (r *RNG) Elements(num, bound int) []int {
	if num > bound {
		num = bound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int]struct{}, num)
	elems := make([]int, 0, num)
	for len(elems) < num {
		x := r.rand.Intn(bound)
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		elems = append(elems, x)
	}
	sort.Ints(elems)
	return elems
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}
