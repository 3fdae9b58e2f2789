// Package tour defines the core planar-TSP data model and tour metrics.
//
// It provides:
//
//   - City     - an immutable 2D point; equality and hashing by coordinate value.
//   - Cities   - a problem instance: a finite multiset of City in canonical order.
//   - Tour     - an ordered, implicitly cyclic visit sequence (no closing repeat).
//   - Segment  - an ordered, non-cyclic path used while merging partial tours.
//   - Link     - an unordered city pair with its Euclidean distance.
//
// Metrics:
//
//   - Distance      - Euclidean distance between two cities.        O(1)
//   - Length        - cyclic tour length, wraparound link included. O(n)
//   - SegmentLength - open path length, no closing link.            O(n)
//   - ValidTour     - multiset-equality oracle every construction
//     algorithm must satisfy.                                       O(n)
//
// Degenerate inputs are explicit, not errors: a 0- or 1-city tour has
// length 0, and duplicate-coordinate cities are permitted (their links
// have distance 0).
//
// All functions are deterministic and side-effect free; Cities values are
// never mutated after construction.
package tour
