package tour

import (
	"fmt"
	"hash/fnv"
	"math"
	"slices"
)

// City is an immutable 2D point. The zero value is the origin.
//
// City is comparable: equality is by coordinate value, so City works as a
// map key and Cities can carry exact duplicates.
type City struct {
	X float64
	Y float64
}

// String renders the city as "(x, y)" with compact float formatting.
func (c City) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}

// Cities is one problem instance: a finite multiset of City held in
// canonical order (ascending by X, then Y). Canonical order makes instance
// identity equal to sequence equality and gives every algorithm a
// deterministic scan order regardless of how the instance was produced.
//
// Construct values with NewCities; treat them as immutable afterwards.
type Cities []City

// Tour is an ordered visit sequence, implicitly cyclic: the link from the
// last city back to the first is part of the tour but the first city is
// not repeated at the end.
type Tour []City

// Segment is an ordered, non-cyclic path of cities. It is an intermediate
// representation used while joining partial tours; there is no implicit
// closing link.
type Segment []City

// Link is an unordered pair of cities with its Euclidean distance cached.
type Link struct {
	A    City
	B    City
	Dist float64
}

// NewLink builds a Link with the distance precomputed.
func NewLink(a, b City) Link {
	return Link{A: a, B: b, Dist: Distance(a, b)}
}

// NewCities copies the given points into canonical order.
// Duplicates are retained: the instance is a multiset, and zero-length
// links between coordinate-equal cities are legitimate.
//
// Complexity: O(n log n).
func NewCities(pts ...City) Cities {
	c := make(Cities, len(pts))
	copy(c, pts)
	slices.SortFunc(c, compareCities)
	return c
}

// compareCities orders by X, then Y.
func compareCities(a, b City) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	default:
		return 0
	}
}

// Clone returns an independent copy of the instance.
func (c Cities) Clone() Cities {
	out := make(Cities, len(c))
	copy(out, c)
	return out
}

// Key returns a 64-bit FNV-1a fingerprint of the canonical coordinate
// sequence. Two Cities values built from the same multiset of points have
// the same Key; the benchmark session uses it as the instance identity.
//
// Complexity: O(n).
func (c Cities) Key() uint64 {
	h := fnv.New64a()
	var (
		buf [8]byte
		i   int
	)
	for i = 0; i < len(c); i++ {
		putFloat64(&buf, c[i].X)
		_, _ = h.Write(buf[:])
		putFloat64(&buf, c[i].Y)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// putFloat64 serializes v into buf in little-endian bit order.
func putFloat64(buf *[8]byte, v float64) {
	bits := math.Float64bits(v)
	var i uint
	for i = 0; i < 8; i++ {
		buf[i] = byte(bits >> (8 * i))
	}
}

// Clone returns an independent copy of the tour.
func (t Tour) Clone() Tour {
	out := make(Tour, len(t))
	copy(out, t)
	return out
}
