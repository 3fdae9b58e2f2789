package tour

import "math"

// Distance returns the Euclidean distance between two cities.
// It is symmetric and zero iff the coordinates are identical.
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Length returns the total length of the cyclic tour, including the
// wraparound link from the last city back to the first.
// A 0- or 1-city tour has length 0.
//
// Complexity: O(n).
func Length(t Tour) float64 {
	n := len(t)
	if n < 2 {
		return 0
	}
	var (
		sum  float64
		prev = t[n-1] // wraparound link is the first term
		i    int
	)
	for i = 0; i < n; i++ {
		sum += Distance(prev, t[i])
		prev = t[i]
	}
	return sum
}

// SegmentLength returns the total length of the open path: consecutive
// links only, no closing link. Same as Length minus the wraparound term.
//
// Complexity: O(n).
func SegmentLength(s Segment) float64 {
	var (
		sum float64
		i   int
	)
	for i = 1; i < len(s); i++ {
		sum += Distance(s[i-1], s[i])
	}
	return sum
}

// ValidTour reports whether t visits exactly the cities of c: the two
// multisets must agree in elements, multiplicities and length. This is the
// correctness oracle every construction algorithm must satisfy, with or
// without a local-search pass on top.
//
// Complexity: O(n) time, O(n) space.
func ValidTour(t Tour, c Cities) bool {
	if len(t) != len(c) {
		return false
	}
	counts := make(map[City]int, len(c))
	var i int
	for i = 0; i < len(c); i++ {
		counts[c[i]]++
	}
	for i = 0; i < len(t); i++ {
		counts[t[i]]--
		if counts[t[i]] < 0 {
			return false
		}
	}
	return true
}

// Shortest returns the minimum-length tour among the candidates, the
// earliest one on ties. Returns nil for an empty candidate list.
//
// Complexity: O(k*n) for k candidate tours.
func Shortest(tours []Tour) Tour {
	if len(tours) == 0 {
		return nil
	}
	var (
		best    = tours[0]
		bestLen = Length(tours[0])
		i       int
		l       float64
	)
	for i = 1; i < len(tours); i++ {
		l = Length(tours[i])
		if l < bestLen {
			best, bestLen = tours[i], l
		}
	}
	return best
}
