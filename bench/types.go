package bench

import (
	"errors"
	"time"

	"github.com/katalvlaran/tourbench/tour"
)

var (
	// ErrInvalidTour reports a construction or optimization step whose
	// output failed tour.ValidTour. This is a fatal internal-invariant
	// violation identifying an algorithm bug; the run is aborted and the
	// wrapped message names the offending algorithm and instance.
	ErrInvalidTour = errors.New("bench: algorithm produced an invalid tour")

	// ErrNoAlgorithms is returned by Ensemble for an empty portfolio.
	ErrNoAlgorithms = errors.New("bench: ensemble needs at least one algorithm")
)

// Algorithm is one tour constructor under benchmark. Build must be
// deterministic and side-effect free; the session's cache assumes that
// rerunning a triple reproduces the same tour.
type Algorithm struct {
	Name  string
	Build func(tour.Cities) (tour.Tour, error)
}

// Optimizer is a local-search pass applied to a constructed tour.
// Improve may mutate its argument in place and must return a permutation
// of it.
type Optimizer struct {
	Name    string
	Improve func(tour.Tour) tour.Tour
}

// Result records one run of an algorithm (optionally followed by one
// optimizer) on one instance. Tours wrapped in a Result are immutable:
// the session hands out copies, never its cached slices.
type Result struct {
	// Algorithm is the constructor name; Optimizer is empty when the run
	// had no local-search pass.
	Algorithm string
	Optimizer string

	Tour   tour.Tour
	Cities tour.Cities

	// Build and Optimize are the separately measured wall-clock phases.
	Build    time.Duration
	Optimize time.Duration

	// Len caches tour.Length(Tour).
	Len float64
}

// Elapsed is the total wall time of both phases.
func (r Result) Elapsed() time.Duration {
	return r.Build + r.Optimize
}

// Label renders the run identity, e.g. "greedy" or "greedy+2opt".
func (r Result) Label() string {
	if r.Optimizer == "" {
		return r.Algorithm
	}
	return r.Algorithm + "+" + r.Optimizer
}
