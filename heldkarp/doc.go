// Package heldkarp solves small planar TSP instances exactly with the
// Held-Karp dynamic program.
//
// The recurrence computes, for the fixed start city A (the canonical
// first) and each end city C, the shortest open segment from A through an
// exact set of intermediate cities to C: the base case with no
// intermediates is the direct link A-C, otherwise the minimum over the
// immediate predecessor B of C of (best segment to B over the remaining
// set) plus the link B-C. The optimal tour is the cheapest such segment
// closed back to A.
//
// Subsets are indexed by bitmask, so the memo is two flat tables
// (cost and predecessor) allocated inside one Solve call. Scoping the memo
// to the call makes cross-instance contamination structurally impossible:
// there is no reset to forget, and concurrent solves of different
// instances cannot share state.
//
// Complexity: O(n^2 * 2^n) time, O(n * 2^n) memory. Intended for
// n <= ~15; Solve refuses n > MaxExactCities up front rather than
// attempting an allocation that cannot succeed.
package heldkarp
