package heldkarp

import (
	"errors"
	"math"

	"github.com/katalvlaran/tourbench/tour"
)

// MaxExactCities bounds the instance size Solve accepts. 2^18 subset rows
// are already ~40 MB of DP state; anything larger is a caller sizing
// mistake, not a workload.
const MaxExactCities = 18

// ErrTooManyCities is returned when the instance exceeds MaxExactCities.
var ErrTooManyCities = errors.New("heldkarp: instance too large for exact solve")

// Solve returns an optimal tour of the instance.
//
// dp[mask][j] is the minimum cost of a segment that starts at city 0,
// visits exactly the cities in mask, and ends at city j; parent[mask][j]
// records the predecessor for reconstruction. Both tables are locals of
// this call (see the package comment on memo scope).
//
// Degenerate inputs: n <= 3 has a single cyclic order, returned as-is.
//
// Complexity: O(n^2 * 2^n) time, O(n * 2^n) space.
func Solve(cities tour.Cities) (tour.Tour, error) {
	n := len(cities)
	if n > MaxExactCities {
		return nil, ErrTooManyCities
	}
	if n <= 3 {
		return tour.Tour(cities.Clone()), nil
	}

	// Dense weights in a flat buffer; removes bounds noise from the DP loops.
	w := make([]float64, n*n)
	{
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				w[i*n+j] = tour.Distance(cities[i], cities[j])
			}
		}
	}

	allMask := (1 << n) - 1

	dp := make([][]float64, 1<<n)
	parent := make([][]int, 1<<n)
	{
		var mask, j int
		for mask = 0; mask <= allMask; mask++ {
			dp[mask] = make([]float64, n)
			parent[mask] = make([]int, n)
			for j = 0; j < n; j++ {
				dp[mask][j] = math.Inf(1)
				parent[mask][j] = -1
			}
		}
	}

	// Base case: the segment consisting of the start alone.
	const startMask = 1 << 0
	dp[startMask][0] = 0

	var (
		mask, prevMask int
		j, k           int
		cand           float64
	)
	for mask = startMask; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue // every segment starts at city 0
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 {
					continue
				}
				cand = dp[prevMask][k] + w[k*n+j]
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// Close each full segment back to the start; keep the cheapest.
	var (
		bestCost = math.Inf(1)
		last     = -1
		total    float64
	)
	for j = 1; j < n; j++ {
		total = dp[allMask][j] + w[j*n+0]
		if total < bestCost {
			bestCost = total
			last = j
		}
	}

	// Reconstruct the open visit order from the parent table.
	var (
		order = make([]int, n)
		i     int
	)
	mask = allMask
	j = last
	for i = n - 1; i >= 1; i-- {
		order[i] = j
		k = parent[mask][j]
		mask ^= 1 << j
		j = k
	}
	order[0] = 0

	out := make(tour.Tour, n)
	for i = 0; i < n; i++ {
		out[i] = cities[order[i]]
	}
	return out, nil
}
