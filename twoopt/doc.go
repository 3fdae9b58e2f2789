// Package twoopt implements 2-opt local search on planar tours.
//
// Optimize repeatedly scans candidate subsegments tour[i:j] (longest
// first) and reverses a subsegment whenever the reversal strictly
// shortens the tour, i.e. the two replaced links are longer than the two
// links the reversal creates. A full pass applies every improving reversal
// it finds; passes repeat until one makes no change, at which point the
// tour is a local optimum with respect to single-segment reversal.
//
// Termination is guaranteed: each accepted reversal strictly decreases the
// tour length, which is bounded below, and the tour has finitely many
// orders - so only finitely many reversals can ever be accepted.
//
// The (i, j) candidate pairs depend only on the tour length, not on the
// cities, so they are computed once per length and cached process-wide
// behind a mutex. The cache holds pure index data and cannot leak state
// between problem instances.
package twoopt
