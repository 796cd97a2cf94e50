// Package testutil provides testing utilities for biom.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible random count matrices,
// identifiers and metadata.
//
// # Random Count Generation
//
//	rng := testutil.NewRNG(seed)
//	entries := rng.SparseCounts(100, 20, 0.1, 50)   // ~10% density, counts in [1, 50]
//	t := rng.RandomTable(matrix.TypeSparse, 100, 20, 0.1)
//
// Counts follow a Zipfian distribution, matching the heavy-tailed abundance
// profiles of real biological samples.
package testutil
