// Package construct provides tour construction heuristics and the small
// exhaustive solver for the planar Travelling Salesperson Problem.
//
// Every constructor takes a tour.Cities instance and returns a tour.Tour
// that is a permutation of the instance (tour.ValidTour holds), breaking
// ties by the canonical city order so results are fully deterministic.
//
// Constructors:
//
//   - Exhaustive        - all tours with the first city fixed; O(n!).
//     Intended for n <= ~10. Reflected duplicates are not eliminated;
//     reversal does not change tour length, so the optimum is unaffected.
//   - NearestNeighbor   - greedy extension to the closest unvisited city;
//     O(n^2). RepeatedNearest restarts from k deterministic start cities.
//   - NearestIndexed    - the same greedy rule served by an R-tree nearest
//     query instead of the dense scan; O(n log n) typical.
//   - Greedy            - edge joining: candidate links shortest first, a
//     link is accepted iff it merges two distinct open segments at their
//     endpoints; O(n^2 log n) for the sort, amortized near-linear joining.
//   - MSTPreorder       - Prim minimum spanning tree walked in preorder;
//     the classic 2-approximation; O(n^2).
//   - DivideAndConquer  - median split along the wider axis, recursive
//     solve, O(n^2) best-rotation join; exhaustive below the threshold.
//
// Caller configuration mistakes (split threshold < 2, restart count <= 0)
// are reported at call time with sentinel errors, never from inside the
// recursion.
package construct
