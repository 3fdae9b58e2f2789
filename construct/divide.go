package construct

import (
	"sort"

	"github.com/katalvlaran/tourbench/tour"
)

// DivideAndConquer runs DivideAndConquerSplit with DefaultSplitThreshold.
func DivideAndConquer(cities tour.Cities) (tour.Tour, error) {
	return DivideAndConquerSplit(cities, DefaultSplitThreshold)
}

// DivideAndConquerSplit builds a tour recursively: instances smaller than
// split are solved exactly with Exhaustive; larger instances are cut at
// the median along whichever axis has the larger coordinate spread, each
// half is solved recursively, and the two sub-tours are joined by the best
// combination of rotation of each half and orientation of the second half.
//
// The join evaluates every (rotation, rotation, orientation) candidate in
// O(1) with the broken-edge identity: the cost of a concatenation is the
// two cycle lengths minus the two broken links plus the two new cross
// links. That keeps each merge at O(n^2) and the whole recursion at
// O(n^2 log n); recursion depth is O(log n).
//
// Errors: ErrBadSplitThreshold for split < 2, checked once at call time.
func DivideAndConquerSplit(cities tour.Cities, split int) (tour.Tour, error) {
	if split < 2 {
		return nil, ErrBadSplitThreshold
	}
	return solveDivide(cities.Clone(), split)
}

// solveDivide is the recursion body; pts is owned by the callee.
func solveDivide(pts []tour.City, split int) (tour.Tour, error) {
	if len(pts) < split {
		return Exhaustive(tour.Cities(pts))
	}
	half1, half2 := splitCities(pts)
	t1, err := solveDivide(half1, split)
	if err != nil {
		return nil, err
	}
	t2, err := solveDivide(half2, split)
	if err != nil {
		return nil, err
	}
	return joinTours(t1, t2), nil
}

// splitCities orders pts along the axis with the larger extent (the other
// axis breaks ties, so the cut is deterministic) and returns the two
// halves around the median.
func splitCities(pts []tour.City) ([]tour.City, []tour.City) {
	var (
		minX, maxX = pts[0].X, pts[0].X
		minY, maxY = pts[0].Y, pts[0].Y
		i          int
	)
	for i = 1; i < len(pts); i++ {
		if pts[i].X < minX {
			minX = pts[i].X
		}
		if pts[i].X > maxX {
			maxX = pts[i].X
		}
		if pts[i].Y < minY {
			minY = pts[i].Y
		}
		if pts[i].Y > maxY {
			maxY = pts[i].Y
		}
	}

	byX := maxX-minX > maxY-minY
	sort.Slice(pts, func(a, b int) bool {
		if byX {
			if pts[a].X != pts[b].X {
				return pts[a].X < pts[b].X
			}
			return pts[a].Y < pts[b].Y
		}
		if pts[a].Y != pts[b].Y {
			return pts[a].Y < pts[b].Y
		}
		return pts[a].X < pts[b].X
	})

	mid := len(pts) / 2
	return pts[:mid], pts[mid:]
}

// joinTours picks the cheapest concatenation of a rotation of t1 with a
// rotation of t2 in either orientation, then materializes it.
//
// A rotation starting at index r breaks the link (t[r-1], t[r]); the open
// path it leaves costs Length(t) minus that link. Closing the
// concatenation adds the two cross links between the path ends.
func joinTours(t1, t2 tour.Tour) tour.Tour {
	n1, n2 := len(t1), len(t2)
	if n1 == 0 {
		return t2
	}
	if n2 == 0 {
		return t1
	}

	var (
		l1 = tour.Length(t1)
		l2 = tour.Length(t2)

		bestCost           float64
		bestR1, bestR2     int
		bestRev, haveCandi bool

		r1, r2             int
		open1, open2, cost float64
		f1, e1, f2, e2     tour.City // path first/last cities per candidate
	)
	for r1 = 0; r1 < n1; r1++ {
		f1 = t1[r1]
		e1 = t1[(r1-1+n1)%n1]
		open1 = l1 - tour.Distance(e1, f1)
		for r2 = 0; r2 < n2; r2++ {
			f2 = t2[r2]
			e2 = t2[(r2-1+n2)%n2]
			open2 = l2 - tour.Distance(e2, f2)

			// Forward: ...e1 -> f2 ... e2 -> f1...
			cost = open1 + open2 + tour.Distance(e1, f2) + tour.Distance(e2, f1)
			if !haveCandi || cost < bestCost {
				bestCost, bestR1, bestR2, bestRev, haveCandi = cost, r1, r2, false, true
			}
			// Reversed second half: ...e1 -> e2 ... f2 -> f1...
			cost = open1 + open2 + tour.Distance(e1, e2) + tour.Distance(f2, f1)
			if cost < bestCost {
				bestCost, bestR1, bestR2, bestRev = cost, r1, r2, true
			}
		}
	}

	out := make(tour.Tour, 0, n1+n2)
	for r1 = 0; r1 < n1; r1++ {
		out = append(out, t1[(bestR1+r1)%n1])
	}
	if !bestRev {
		for r2 = 0; r2 < n2; r2++ {
			out = append(out, t2[(bestR2+r2)%n2])
		}
	} else {
		for r2 = n2 - 1; r2 >= 0; r2-- {
			out = append(out, t2[(bestR2+r2)%n2])
		}
	}
	return out
}
