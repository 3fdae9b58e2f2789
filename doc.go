// Package tourbench is a playground for building, optimizing and
// benchmarking planar Travelling-Salesperson tours.
//
// 🚀 What is tourbench?
//
//	A deterministic, thread-safe library that brings together:
//		• Core model: City, Cities, Tour, Segment, Link + tour metrics
//		• Sampling: seeded, fully reproducible random city instances
//		• Constructions: exhaustive, nearest-neighbor (plain, repeated,
//		  R-tree indexed), greedy edge joining, MST preorder, divide & conquer
//		• Local search: 2-opt segment reversal to a fixed point
//		• Exact solving: Held–Karp dynamic programming (small n)
//		• Benchmarking: cached, validity-checked, concurrently usable runs
//		  with per-instance histories, rankings and an ensemble strategy
//
// ✨ Why choose tourbench?
//
//   - Deterministic – every heuristic reproduces bit-identical tours
//   - Honest timing – construction and optimization measured separately
//   - Safe caching – results memoized per (algorithm, instance, optimizer)
//   - Comparable – one session, many algorithms, same instances
//
// Everything is organized under flat subpackages:
//
//	tour/      — core data model and metrics
//	sample/    — deterministic instance generation
//	construct/ — tour construction algorithms
//	twoopt/    — 2-opt local search
//	heldkarp/  — exact dynamic-programming solver
//	bench/     — benchmark harness, histories, rankings, ensemble
//	ingest/    — GeoJSON / text record ingestion into city sets
//
// Quick ASCII example:
//
//	    (0,4)───(3,4)
//	      │       │
//	    (0,0)───(3,0)
//
//	four cities on a rectangle; the optimal tour is its boundary.
//
//	go get github.com/katalvlaran/tourbench
package tourbench
