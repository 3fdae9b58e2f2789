package sample

import (
	"math/rand"

	"github.com/katalvlaran/tourbench/tour"
)

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer (Vigna 2014). Small changes
// in either input produce large, well-distributed output changes, so the
// (n, seed) pairs used by RandomCities map to decorrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// rngFor returns a deterministic *rand.Rand for the (parent, stream) pair.
// math/rand.Rand is not goroutine-safe; every call site gets its own.
func rngFor(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// RandomCities draws exactly n cities with coordinates uniform in
// [0,width) x [0,height), using a stream seeded by a deterministic mix of
// (n, seed). Identical arguments yield the identical Cities value.
// Coordinate duplicates are possible by design and are retained.
//
// Errors: ErrBadDimensions for n < 0, width <= 0 or height <= 0.
//
// Complexity: O(n log n) (draw + canonical sort).
func RandomCities(n int, seed int64, width, height float64) (tour.Cities, error) {
	if n < 0 || width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	var (
		rng = rngFor(seed, uint64(n))
		pts = make([]tour.City, n)
		i   int
	)
	for i = 0; i < n; i++ {
		pts[i] = tour.City{X: rng.Float64() * width, Y: rng.Float64() * height}
	}
	return tour.NewCities(pts...), nil
}

// Indices returns k distinct indices out of 0..n-1, chosen deterministically
// from the (n, seed) stream. If k > n, all n indices are returned. The
// result order is the shuffled draw order, not ascending.
//
// Errors: ErrBadSampleCount for k <= 0; ErrBadDimensions for n < 0.
//
// Complexity: O(n) time, O(n) space.
func Indices(n, k int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, ErrBadDimensions
	}
	if k <= 0 {
		return nil, ErrBadSampleCount
	}
	if k > n {
		k = n
	}
	var (
		rng  = rngFor(seed, uint64(n))
		perm = make([]int, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	// Fisher-Yates; only the first k positions are consumed but the full
	// shuffle keeps the stream consumption independent of k.
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k], nil
}

// Sample returns k cities of c chosen deterministically via Indices.
// The selection respects the canonical order of c, so equal instances
// always yield equal samples.
func Sample(c tour.Cities, k int, seed int64) ([]tour.City, error) {
	idx, err := Indices(len(c), k, seed)
	if err != nil {
		return nil, err
	}
	out := make([]tour.City, len(idx))
	var i int
	for i = 0; i < len(idx); i++ {
		out[i] = c[idx[i]]
	}
	return out, nil
}

// TestSet builds s independent instances of n random cities each, with
// per-instance seeds derived from the pair (s, i). The same (s, n) always
// reproduces the same test set; the benchmark harness depends on that.
//
// Complexity: O(s*n log n).
func TestSet(s, n int) ([]tour.Cities, error) {
	if s < 0 {
		return nil, ErrBadDimensions
	}
	var (
		out = make([]tour.Cities, s)
		i   int
		err error
	)
	for i = 0; i < s; i++ {
		out[i], err = RandomCities(n, deriveSeed(int64(s), uint64(i)), DefaultWidth, DefaultHeight)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
