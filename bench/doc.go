// Package bench is the benchmark harness: timed, cached, validity-checked
// execution of construction algorithms (optionally followed by a 2-opt
// pass) against one or many city instances.
//
// A Session owns all mutable benchmark state (REDESIGN over the classic
// notebook globals): the run memoization cache and the append-only
// per-instance Result history. Construct a Session per comparison run;
// nothing in this package touches package-level state.
//
// Entry points:
//
//   - Session.Run       - execute one (algorithm, instance, optimizer)
//     triple; construction and optimization are timed separately, the
//     final tour is checked with tour.ValidTour (a violation aborts the
//     run with a diagnostic error - it means an algorithm bug, never a
//     runtime condition), and the Result joins the instance history.
//     Identical triples are served from the cache, at most once computed.
//   - Session.Benchmark - one algorithm over a fixed instance list.
//   - Session.Ensemble  - run a portfolio on one instance, keep the
//     shortest tour.
//   - Session.Rankings  - rank counts per algorithm across a test set,
//     the data behind a comparison table.
//
// Concurrency: Run may be called from many goroutines. The cache and the
// histories sit behind one mutex; concurrent first-time computations of
// the same triple coalesce onto a single execution, and concurrent
// appends to one instance's history never race or drop entries. The
// algorithms themselves are pure CPU work and run outside the lock.
package bench
