package twoopt

import (
	"sync"

	"github.com/katalvlaran/tourbench/tour"
)

// indexPair is one candidate subsegment [i, j) of a tour.
type indexPair struct {
	i, j int
}

// segCache memoizes subsegment pairs per tour length. Guarded by segMu;
// the values are immutable once stored.
var (
	segMu    sync.Mutex
	segCache = make(map[int][]indexPair)
)

// subsegments returns the (i, j) index pairs denoting tour[i:j] candidate
// subsegments for a tour of length n, longest segments first. The pairs
// are independent of city identity, so the result is cached per n.
//
// Complexity: O(n^2) pairs on first use per length; O(1) after.
func subsegments(n int) []indexPair {
	segMu.Lock()
	defer segMu.Unlock()
	if pairs, ok := segCache[n]; ok {
		return pairs
	}

	pairs := make([]indexPair, 0, (n-2)*(n-3)/2+n)
	var length, i int
	for length = n - 2; length >= 2; length-- {
		for i = 0; i+length <= n-1; i++ {
			pairs = append(pairs, indexPair{i: i, j: i + length})
		}
	}
	segCache[n] = pairs
	return pairs
}

// Optimize runs 2-opt segment reversals on t until a full pass finds no
// improving reversal, then returns t. The tour is mutated in place; the
// result is a permutation of the input, so tour.ValidTour is preserved.
// Tours shorter than 4 cities have no proper subsegment and are returned
// unchanged.
//
// Complexity: O(passes * n^2) checks; each accepted reversal is O(n).
func Optimize(t tour.Tour) tour.Tour {
	n := len(t)
	if n < 4 {
		return t
	}

	pairs := subsegments(n)

	var (
		changed = true
		p       int
	)
	for changed {
		changed = false
		for p = 0; p < len(pairs); p++ {
			if reversalImproves(t, pairs[p].i, pairs[p].j) {
				reverseRange(t, pairs[p].i, pairs[p].j-1)
				changed = true
			}
		}
	}
	return t
}

// reversalImproves reports whether reversing tour[i:j] strictly shortens
// the tour: with neighbors A = t[i-1] and D = t[j] around the segment
// B..C = t[i]..t[j-1], the reversal replaces links A-B and C-D with A-C
// and B-D. Comparison is strict, so zero-gain reversals are never applied
// and the pass loop terminates.
//
// Complexity: O(1).
func reversalImproves(t tour.Tour, i, j int) bool {
	n := len(t)
	var (
		a = t[(i-1+n)%n]
		b = t[i]
		c = t[j-1]
		d = t[j%n]
	)
	return tour.Distance(a, b)+tour.Distance(c, d) > tour.Distance(a, c)+tour.Distance(b, d)
}

// reverseRange reverses the inclusive range t[i..k] in place.
func reverseRange(t tour.Tour, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
