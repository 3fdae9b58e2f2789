package construct

import (
	"sort"

	"github.com/katalvlaran/tourbench/tour"
)

// indexLink is one candidate edge between two city indices. Working on
// indices rather than City values keeps duplicate-coordinate cities
// distinct in the endpoint bookkeeping.
type indexLink struct {
	a, b int
	dist float64
}

// pathSeg is one open segment under construction. Only its two current
// endpoints are registered in the endpoint lookup.
type pathSeg struct {
	cities []int
}

// Greedy builds a tour by edge joining: all O(n^2) candidate links are
// sorted ascending by distance (endpoint indices break ties), then
// processed shortest first. A link is accepted iff both its endpoints are
// current endpoints of two distinct open segments; the segments are merged,
// reversing one in place when needed to align the joined ends. Links that
// would close a cycle early (same segment) or attach to an interior city
// (no longer in the endpoint map) are rejected. The single segment spanning
// all cities is returned as the tour.
//
// The endpoint-to-segment map gives O(1) accept/reject per link, so the
// joining phase is amortized near-linear; the link sort dominates.
//
// Complexity: O(n^2 log n) time, O(n^2) space for the candidate links.
func Greedy(cities tour.Cities) (tour.Tour, error) {
	n := len(cities)
	if n <= 2 {
		return tour.Tour(cities.Clone()), nil
	}

	links := sortedLinks(cities)

	// Each city starts as its own one-element segment.
	endpoints := make(map[int]*pathSeg, n)
	var i int
	for i = 0; i < n; i++ {
		endpoints[i] = &pathSeg{cities: []int{i}}
	}

	var (
		sa, sb *pathSeg
		ok     bool
		merged *pathSeg
		li     int
	)
	for li = 0; li < len(links); li++ {
		sa, ok = endpoints[links[li].a]
		if !ok {
			continue // interior city: already has two links
		}
		sb, ok = endpoints[links[li].b]
		if !ok {
			continue
		}
		if sa == sb {
			continue // would close a cycle prematurely
		}
		merged = joinSegments(endpoints, sa, sb, links[li].a, links[li].b)
		if len(merged.cities) == n {
			out := make(tour.Tour, n)
			for i = 0; i < n; i++ {
				out[i] = cities[merged.cities[i]]
			}
			return out, nil
		}
	}

	// Unreachable: on a complete link set exactly n-1 links are accepted
	// before the loop ends, and the last acceptance returned above.
	return nil, errGreedyIncomplete
}

// sortedLinks enumerates all index pairs (i < j) and sorts them by
// ascending distance, then by (i, j) for a deterministic order on ties.
func sortedLinks(cities tour.Cities) []indexLink {
	n := len(cities)
	links := make([]indexLink, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			links = append(links, indexLink{a: i, b: j, dist: tour.Distance(cities[i], cities[j])})
		}
	}
	sort.Slice(links, func(x, y int) bool {
		if links[x].dist != links[y].dist {
			return links[x].dist < links[y].dist
		}
		if links[x].a != links[y].a {
			return links[x].a < links[y].a
		}
		return links[x].b < links[y].b
	})
	return links
}

// joinSegments merges sa and sb into one segment joined by the link a-b,
// where a is an endpoint of sa and b an endpoint of sb. Either segment is
// reversed in place when its joined end is not already facing the link.
// The endpoint map is updated: a and b become interior, the merged
// segment's outer ends are (re)registered.
func joinSegments(endpoints map[int]*pathSeg, sa, sb *pathSeg, a, b int) *pathSeg {
	if sa.cities[len(sa.cities)-1] != a {
		reverseInts(sa.cities)
	}
	if sb.cities[0] != b {
		reverseInts(sb.cities)
	}
	sa.cities = append(sa.cities, sb.cities...)

	delete(endpoints, a)
	delete(endpoints, b)
	endpoints[sa.cities[0]] = sa
	endpoints[sa.cities[len(sa.cities)-1]] = sa
	return sa
}

// reverseInts reverses s in place.
func reverseInts(s []int) {
	for i, k := 0, len(s)-1; i < k; i, k = i+1, k-1 {
		s[i], s[k] = s[k], s[i]
	}
}
