// Package testutil provides testing utilities for densevec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator for producing reproducible
// element workloads.
//
//	rng := testutil.NewRNG(seed)
//	elems := rng.Elements(1000, 1<<20) // 1000 distinct elements below 2^20
package testutil
