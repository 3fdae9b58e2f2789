package construct

import (
	"math"

	"github.com/katalvlaran/tourbench/tour"
)

// MSTPreorder builds a minimum spanning tree over the cities with Prim
// frontier growth (repeatedly attach the cheapest link from the tree to a
// non-tree city) and returns a depth-first preorder traversal rooted at
// the canonical first city. With the triangle inequality this is the
// classic 2-approximation construction.
//
// Determinism: the cheapest-frontier scan keeps the smallest index on
// ties, and children are recorded in attachment order, so equal instances
// always produce the same tour.
//
// The preorder walk uses an explicit stack; recursion depth never depends
// on the instance.
//
// Complexity: O(n^2) time, O(n) space (dense Prim, no heap needed).
func MSTPreorder(cities tour.Cities) (tour.Tour, error) {
	n := len(cities)
	if n <= 1 {
		return tour.Tour(cities.Clone()), nil
	}

	var (
		inTree   = make([]bool, n)
		bestCost = make([]float64, n)
		parent   = make([]int, n)
		children = make([][]int, n)
		v        int
	)
	for v = 0; v < n; v++ {
		bestCost[v] = math.Inf(1)
		parent[v] = -1
	}
	bestCost[0] = 0

	var (
		it   int
		u    int
		minW float64
		d    float64
	)
	for it = 0; it < n; it++ {
		// Cheapest non-tree vertex; strict < keeps the smallest index on ties.
		u, minW = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				u, minW = v, bestCost[v]
			}
		}
		inTree[u] = true
		if parent[u] >= 0 {
			children[parent[u]] = append(children[parent[u]], u)
		}
		for v = 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			d = tour.Distance(cities[u], cities[v])
			if d < bestCost[v] {
				bestCost[v] = d
				parent[v] = u
			}
		}
	}

	// Preorder traversal from the root with an explicit stack. Children are
	// pushed in reverse so the earliest-attached child is visited first.
	var (
		out   = make(tour.Tour, 0, n)
		stack = make([]int, 0, n)
		i     int
	)
	stack = append(stack, 0)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cities[u])
		for i = len(children[u]) - 1; i >= 0; i-- {
			stack = append(stack, children[u][i])
		}
	}

	return out, nil
}
