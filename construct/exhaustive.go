package construct

import "github.com/katalvlaran/tourbench/tour"

// Exhaustive enumerates every tour with the canonical first city fixed in
// place (eliminating rotational duplicates; reflections are enumerated
// too) and returns the minimum-length one.
//
// Permutations are generated with the iterative form of Heap's algorithm:
// one swap per candidate, no recursion, no per-permutation allocation.
//
// Degenerate inputs: n <= 3 has a single cyclic order, returned as-is.
//
// Complexity: O(n * (n-1)!) time, O(n) space. Intended for n <= ~10.
func Exhaustive(cities tour.Cities) (tour.Tour, error) {
	n := len(cities)
	if n <= 3 {
		return tour.Tour(cities.Clone()), nil
	}

	var (
		cur  = make(tour.Tour, n)
		best = make(tour.Tour, n)
	)
	copy(cur, cities)
	copy(best, cur)
	bestLen := tour.Length(best)

	// Heap's algorithm over the suffix cur[1:]; cur[0] stays fixed.
	var (
		rest = cur[1:]
		m    = n - 1
		c    = make([]int, m)
		i    int
		l    float64
	)
	for i < m {
		if c[i] < i {
			if i%2 == 0 {
				rest[0], rest[i] = rest[i], rest[0]
			} else {
				rest[c[i]], rest[i] = rest[i], rest[c[i]]
			}
			if l = tour.Length(cur); l < bestLen {
				bestLen = l
				copy(best, cur)
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return best, nil
}
