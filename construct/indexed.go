package construct

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/tourbench/tour"
)

// pointTol is the half-extent of the degenerate rectangle that represents
// a city in the R-tree; rtreego requires strictly positive side lengths.
const pointTol = 1e-9

// cityEntry adapts one city index to the rtreego.Spatial interface.
type cityEntry struct {
	loc rtreego.Point
	idx int
}

// Bounds implements rtreego.Spatial.
func (e *cityEntry) Bounds() rtreego.Rect {
	return e.loc.ToRect(pointTol)
}

// NearestIndexed is the nearest-neighbor construction served by a 2D
// R-tree instead of the dense O(n^2) scan: the tree answers each
// closest-unvisited query, and visited cities are deleted as the tour
// grows. Output satisfies the same contract as NearestNeighbor and is
// deterministic for a fixed instance, but ties inside the tree may resolve
// to a different (equally near) city than the dense scan picks.
//
// Complexity: O(n log n) typical, O(n) space on top of the tree.
func NearestIndexed(cities tour.Cities) (tour.Tour, error) {
	n := len(cities)
	if n <= 2 {
		return tour.Tour(cities.Clone()), nil
	}

	var (
		rt      = rtreego.NewTree(2, 25, 50)
		entries = make([]*cityEntry, n)
		i       int
	)
	for i = 0; i < n; i++ {
		entries[i] = &cityEntry{loc: rtreego.Point{cities[i].X, cities[i].Y}, idx: i}
		rt.Insert(entries[i])
	}

	var (
		out = make(tour.Tour, 0, n)
		cur = entries[0]
	)
	rt.Delete(cur)
	out = append(out, cities[cur.idx])

	var nearest rtreego.Spatial
	for i = 1; i < n; i++ {
		nearest = rt.NearestNeighbor(cur.loc)
		cur = nearest.(*cityEntry)
		rt.Delete(cur)
		out = append(out, cities[cur.idx])
	}

	return out, nil
}
