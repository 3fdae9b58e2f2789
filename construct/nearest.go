package construct

import (
	"github.com/katalvlaran/tourbench/sample"
	"github.com/katalvlaran/tourbench/tour"
)

// NearestNeighbor builds a tour by greedy extension from the canonical
// first city: at each step the closest not-yet-visited city is appended,
// ties broken by canonical index.
//
// Complexity: O(n^2) time, O(n) space.
func NearestNeighbor(cities tour.Cities) (tour.Tour, error) {
	return NearestNeighborFrom(cities, 0)
}

// NearestNeighborFrom is NearestNeighbor with an explicit start city,
// given as an index into the canonical order.
//
// Errors: ErrStartOutOfRange unless n == 0 (empty tour) or 0 <= start < n.
func NearestNeighborFrom(cities tour.Cities, start int) (tour.Tour, error) {
	n := len(cities)
	if n == 0 {
		return tour.Tour{}, nil
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		visited = make([]bool, n)
		out     = make(tour.Tour, 0, n)
		cur     = start
		step    int
	)
	visited[cur] = true
	out = append(out, cities[cur])

	var (
		next int
		best float64
		d    float64
		j    int
	)
	for step = 1; step < n; step++ {
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d = tour.Distance(cities[cur], cities[j])
			// Strict < keeps the smallest index on ties.
			if next == -1 || d < best {
				next, best = j, d
			}
		}
		visited[next] = true
		out = append(out, cities[next])
		cur = next
	}

	return out, nil
}

// RepeatedNearest runs NearestNeighborFrom from k distinct start cities,
// chosen deterministically via sample.Indices, and returns the shortest
// resulting tour.
//
// Errors: ErrBadRestartCount for k <= 0, reported before any work.
//
// Complexity: O(k*n^2).
func RepeatedNearest(cities tour.Cities, k int, seed int64) (tour.Tour, error) {
	if k <= 0 {
		return nil, ErrBadRestartCount
	}
	if len(cities) == 0 {
		return tour.Tour{}, nil
	}

	starts, err := sample.Indices(len(cities), k, seed)
	if err != nil {
		return nil, err
	}

	var (
		best    tour.Tour
		bestLen float64
		t       tour.Tour
		l       float64
		i       int
	)
	for i = 0; i < len(starts); i++ {
		t, err = NearestNeighborFrom(cities, starts[i])
		if err != nil {
			return nil, err
		}
		l = tour.Length(t)
		if best == nil || l < bestLen {
			best, bestLen = t, l
		}
	}

	return best, nil
}
