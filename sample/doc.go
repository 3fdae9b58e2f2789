// Package sample provides deterministic generation of planar city sets
// for reproducible experiments.
//
// Goals:
//
//   - Determinism: identical arguments always yield the identical Cities
//     value, across runs and platforms. The benchmark cache relies on this.
//   - Encapsulation: a single seed-mixing policy (SplitMix64 finalizer);
//     no time-based randomness anywhere.
//   - Safety: sentinel errors from types.go for caller configuration
//     mistakes; no panics on user input.
//
// The RNG stream for RandomCities(n, seed, ...) is seeded by a
// deterministic mix of (n, seed), so changing either argument produces an
// independent stream while repeating both reproduces the instance exactly.
package sample
