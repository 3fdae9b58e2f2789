package bench

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/tourbench/tour"
)

// runKey identifies one (algorithm, instance, optimizer) triple.
type runKey struct {
	algo   string
	cities uint64
	opt    string
}

// Session owns the run cache and the per-instance Result histories for
// one comparison run. The zero value is not usable; call NewSession.
type Session struct {
	mu       sync.Mutex
	cache    map[runKey]Result
	history  map[uint64][]Result
	inflight map[runKey]chan struct{}
}

// NewSession returns an empty benchmark session.
func NewSession() *Session {
	return &Session{
		cache:    make(map[runKey]Result),
		history:  make(map[uint64][]Result),
		inflight: make(map[runKey]chan struct{}),
	}
}

// Run executes alg on cities, follows with opt when non-nil, validates the
// final tour, appends the Result to the instance history and memoizes it.
//
// Repeated calls with an identical triple are idempotent: the first caller
// computes, concurrent duplicates wait for it, later calls hit the cache
// and do not touch the history again. An optimized run reuses the cached
// unoptimized run for its construction phase, so Build time is shared.
//
// Errors: the algorithm's own error, or ErrInvalidTour (wrapped with the
// offending algorithm and instance) when the output fails tour.ValidTour.
func (s *Session) Run(alg Algorithm, cities tour.Cities, opt *Optimizer) (Result, error) {
	key := runKey{algo: alg.Name, cities: cities.Key(), opt: optName(opt)}

	for {
		s.mu.Lock()
		if r, ok := s.cache[key]; ok {
			s.mu.Unlock()
			r.Tour = r.Tour.Clone() // callers never see cached slices
			return r, nil
		}
		if ch, ok := s.inflight[key]; ok {
			// Someone is computing this triple; wait and re-check.
			s.mu.Unlock()
			<-ch
			continue
		}
		ch := make(chan struct{})
		s.inflight[key] = ch
		s.mu.Unlock()

		res, err := s.compute(alg, cities, opt)

		s.mu.Lock()
		delete(s.inflight, key)
		if err == nil {
			s.cache[key] = res
			s.history[key.cities] = append(s.history[key.cities], res)
		}
		s.mu.Unlock()
		close(ch)

		if err == nil {
			res.Tour = res.Tour.Clone()
		}
		return res, err
	}
}

// compute performs the timed construction (+ optional optimization) for
// one triple. Called without the session lock held.
func (s *Session) compute(alg Algorithm, cities tour.Cities, opt *Optimizer) (Result, error) {
	if opt == nil {
		t0 := time.Now()
		t, err := alg.Build(cities)
		build := time.Since(t0)
		if err != nil {
			return Result{}, err
		}
		if !tour.ValidTour(t, cities) {
			return Result{}, invalidTourError(alg.Name, "", cities)
		}
		return Result{
			Algorithm: alg.Name,
			Tour:      t,
			Cities:    cities,
			Build:     build,
			Len:       tour.Length(t),
		}, nil
	}

	// Optimized run: construction comes from the cached plain run.
	base, err := s.Run(alg, cities, nil)
	if err != nil {
		return Result{}, err
	}
	t0 := time.Now()
	t := opt.Improve(base.Tour.Clone())
	optDur := time.Since(t0)
	if !tour.ValidTour(t, cities) {
		return Result{}, invalidTourError(alg.Name, opt.Name, cities)
	}
	return Result{
		Algorithm: alg.Name,
		Optimizer: opt.Name,
		Tour:      t,
		Cities:    cities,
		Build:     base.Build,
		Optimize:  optDur,
		Len:       tour.Length(t),
	}, nil
}

// invalidTourError wraps ErrInvalidTour with the offending algorithm and
// instance identity.
func invalidTourError(algo, opt string, cities tour.Cities) error {
	label := algo
	if opt != "" {
		label = algo + "+" + opt
	}
	return fmt.Errorf("%w: %s on instance %016x (n=%d)", ErrInvalidTour, label, cities.Key(), len(cities))
}

// optName is the cache-key component for an optional optimizer.
func optName(opt *Optimizer) string {
	if opt == nil {
		return ""
	}
	return opt.Name
}

// Benchmark runs one algorithm over a fixed instance list and returns the
// ordered Results, one per instance. The first error aborts the sweep.
func (s *Session) Benchmark(alg Algorithm, tests []tour.Cities, opt *Optimizer) ([]Result, error) {
	out := make([]Result, 0, len(tests))
	var (
		r   Result
		err error
		i   int
	)
	for i = 0; i < len(tests); i++ {
		r, err = s.Run(alg, tests[i], opt)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Ensemble runs every portfolio algorithm (each followed by opt when
// non-nil) on the same instance and returns the single shortest resulting
// tour - trading compute for solution quality.
func (s *Session) Ensemble(cities tour.Cities, algs []Algorithm, opt *Optimizer) (tour.Tour, error) {
	if len(algs) == 0 {
		return nil, ErrNoAlgorithms
	}
	var (
		best Result
		have bool
		r    Result
		err  error
		i    int
	)
	for i = 0; i < len(algs); i++ {
		r, err = s.Run(algs[i], cities, opt)
		if err != nil {
			return nil, err
		}
		if !have || r.Len < best.Len {
			best, have = r, true
		}
	}
	return best.Tour, nil
}

// History returns a copy of the append-only Result history for the
// instance, in insertion order.
func (s *Session) History(cities tour.Cities) []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.history[cities.Key()]
	out := make([]Result, len(h))
	copy(out, h)
	for i := range out {
		out[i].Tour = out[i].Tour.Clone()
	}
	return out
}
