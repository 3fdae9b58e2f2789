package bench_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbench/bench"
	"github.com/katalvlaran/tourbench/sample"
	"github.com/katalvlaran/tourbench/tour"
)

func mustCities(t *testing.T, n int, seed int64) tour.Cities {
	t.Helper()
	cs, err := sample.RandomCities(n, seed, sample.DefaultWidth, sample.DefaultHeight)
	require.NoError(t, err)
	return cs
}

// countingAlgorithm wraps a builder and counts invocations; the session
// cache should keep the count at one per distinct triple.
type countingAlgorithm struct {
	mu    sync.Mutex
	calls int
}

func (c *countingAlgorithm) wrap(inner bench.Algorithm) bench.Algorithm {
	return bench.Algorithm{
		Name: inner.Name,
		Build: func(cs tour.Cities) (tour.Tour, error) {
			c.mu.Lock()
			c.calls++
			c.mu.Unlock()
			return inner.Build(cs)
		},
	}
}

func (c *countingAlgorithm) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestRun_CachesPerTriple(t *testing.T) {
	var (
		s      = bench.NewSession()
		cities = mustCities(t, 20, 1)
		ctr    countingAlgorithm
		alg    = ctr.wrap(bench.Nearest)
	)

	first, err := s.Run(alg, cities, nil)
	require.NoError(t, err)
	second, err := s.Run(alg, cities, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, ctr.count(), "second call should be served from cache")
	assert.Equal(t, first.Len, second.Len)
	assert.Equal(t, first.Tour, second.Tour)
	assert.True(t, tour.ValidTour(first.Tour, cities))
}

func TestRun_OptimizedReusesConstruction(t *testing.T) {
	var (
		s      = bench.NewSession()
		cities = mustCities(t, 20, 2)
		ctr    countingAlgorithm
		alg    = ctr.wrap(bench.Greedy)
	)

	plain, err := s.Run(alg, cities, nil)
	require.NoError(t, err)

	opt, err := s.Run(alg, cities, &bench.TwoOpt)
	require.NoError(t, err)

	assert.Equal(t, 1, ctr.count(), "optimized run must reuse the cached construction")
	assert.Equal(t, plain.Build, opt.Build, "construction time is shared")
	assert.Equal(t, "2opt", opt.Optimizer)
	assert.Equal(t, "greedy+2opt", opt.Label())
	assert.LessOrEqual(t, opt.Len, plain.Len, "2-opt never lengthens a tour")
	assert.True(t, tour.ValidTour(opt.Tour, cities))
}

func TestRun_CachedTourIsIsolated(t *testing.T) {
	var (
		s      = bench.NewSession()
		cities = mustCities(t, 10, 3)
	)

	r1, err := s.Run(bench.Nearest, cities, nil)
	require.NoError(t, err)

	// Corrupting a returned tour must not reach the cache.
	r1.Tour[0], r1.Tour[1] = r1.Tour[1], r1.Tour[0]

	r2, err := s.Run(bench.Nearest, cities, nil)
	require.NoError(t, err)
	assert.True(t, tour.ValidTour(r2.Tour, cities))
	assert.InDelta(t, r2.Len, tour.Length(r2.Tour), 1e-9)
}

func TestRun_RejectsInvalidTour(t *testing.T) {
	var (
		s      = bench.NewSession()
		cities = mustCities(t, 8, 4)
		broken = bench.Algorithm{
			Name: "broken",
			Build: func(cs tour.Cities) (tour.Tour, error) {
				// Drops a city: fails the multiset check.
				return tour.Tour(cs.Clone())[:len(cs)-1], nil
			},
		}
	)

	_, err := s.Run(broken, cities, nil)
	require.ErrorIs(t, err, bench.ErrInvalidTour)
	assert.Contains(t, err.Error(), "broken")

	// Failed runs are not cached and leave no history.
	assert.Empty(t, s.History(cities))
}

func TestRun_PropagatesBuildError(t *testing.T) {
	var (
		s        = bench.NewSession()
		cities   = mustCities(t, 8, 5)
		sentinel = errors.New("boom")
		failing  = bench.Algorithm{
			Name:  "failing",
			Build: func(tour.Cities) (tour.Tour, error) { return nil, sentinel },
		}
	)

	_, err := s.Run(failing, cities, nil)
	require.ErrorIs(t, err, sentinel)

	// Errors are not cached: the next attempt runs again.
	_, err = s.Run(failing, cities, nil)
	require.ErrorIs(t, err, sentinel)
}

func TestRun_ConcurrentSameTripleComputesOnce(t *testing.T) {
	var (
		s      = bench.NewSession()
		cities = mustCities(t, 30, 6)
		ctr    countingAlgorithm
		alg    = ctr.wrap(bench.MST)
		wg     sync.WaitGroup
	)

	const goroutines = 16
	results := make([]bench.Result, goroutines)
	errs := make([]error, goroutines)
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			results[g], errs[g] = s.Run(alg, cities, nil)
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 1, ctr.count(), "concurrent duplicates must share one computation")
	for g := 0; g < goroutines; g++ {
		require.NoError(t, errs[g])
		assert.Equal(t, results[0].Len, results[g].Len)
	}
	assert.Len(t, s.History(cities), 1)
}

func TestRun_ConcurrentDistinctTriples(t *testing.T) {
	var (
		s    = bench.NewSession()
		set  []tour.Cities
		algs = []bench.Algorithm{bench.Nearest, bench.Greedy, bench.MST}
		wg   sync.WaitGroup
		err  error
	)
	set, err = sample.TestSet(4, 25)
	require.NoError(t, err)

	for _, cs := range set {
		for _, alg := range algs {
			wg.Add(1)
			go func(alg bench.Algorithm, cs tour.Cities) {
				defer wg.Done()
				r, runErr := s.Run(alg, cs, nil)
				assert.NoError(t, runErr)
				assert.True(t, tour.ValidTour(r.Tour, cs))
			}(alg, cs)
		}
	}
	wg.Wait()

	for _, cs := range set {
		assert.Len(t, s.History(cs), len(algs))
	}
}

func TestBenchmark_OrderedResults(t *testing.T) {
	var (
		s   = bench.NewSession()
		set []tour.Cities
		err error
	)
	set, err = sample.TestSet(3, 15)
	require.NoError(t, err)

	runs, err := s.Benchmark(bench.Greedy, set, &bench.TwoOpt)
	require.NoError(t, err)
	require.Len(t, runs, len(set))
	for i, r := range runs {
		assert.Equal(t, set[i].Key(), r.Cities.Key(), "result %d out of order", i)
		assert.Equal(t, "greedy+2opt", r.Label())
	}
}

func TestHistory_InsertionOrderAndIsolation(t *testing.T) {
	var (
		s      = bench.NewSession()
		cities = mustCities(t, 12, 7)
	)

	_, err := s.Run(bench.Nearest, cities, nil)
	require.NoError(t, err)
	_, err = s.Run(bench.Greedy, cities, nil)
	require.NoError(t, err)
	_, err = s.Run(bench.Greedy, cities, &bench.TwoOpt)
	require.NoError(t, err)

	h := s.History(cities)
	require.Len(t, h, 3)
	assert.Equal(t, "nearest", h[0].Label())
	assert.Equal(t, "greedy", h[1].Label())
	assert.Equal(t, "greedy+2opt", h[2].Label())

	// Mutating a history copy must not corrupt later reads.
	h[0].Tour[0] = tour.City{X: -1, Y: -1}
	again := s.History(cities)
	assert.True(t, tour.ValidTour(again[0].Tour, cities))
}

func TestEnsemble_ReturnsShortest(t *testing.T) {
	var (
		s      = bench.NewSession()
		cities = mustCities(t, 18, 8)
	)

	best, err := s.Ensemble(cities, bench.DefaultPortfolio(), &bench.TwoOpt)
	require.NoError(t, err)
	require.True(t, tour.ValidTour(best, cities))

	// No portfolio member may have recorded a shorter run.
	for _, r := range s.History(cities) {
		assert.GreaterOrEqual(t, r.Len+1e-9, tour.Length(best))
	}
}

func TestEnsemble_EmptyPortfolio(t *testing.T) {
	s := bench.NewSession()
	_, err := s.Ensemble(mustCities(t, 5, 9), nil, nil)
	require.ErrorIs(t, err, bench.ErrNoAlgorithms)
}

func TestRankings_CountsSumToTests(t *testing.T) {
	var (
		s    = bench.NewSession()
		set  []tour.Cities
		algs = bench.DefaultPortfolio()
		err  error
	)
	set, err = sample.TestSet(5, 20)
	require.NoError(t, err)

	table, err := s.Rankings(algs, set, &bench.TwoOpt)
	require.NoError(t, err)
	require.Len(t, table.Algorithms, len(algs))
	require.Len(t, table.Counts, len(algs))

	for a := range algs {
		assert.Equal(t, algs[a].Name, table.Algorithms[a])
		sum := 0
		for _, c := range table.Counts[a] {
			sum += c
		}
		assert.Equal(t, len(set), sum, "algorithm %s ranks must cover every test", algs[a].Name)
	}

	// Each instance awards rank 0 to at least one algorithm.
	rank0 := 0
	for a := range algs {
		rank0 += table.Counts[a][0]
	}
	assert.GreaterOrEqual(t, rank0, len(set))
}

func TestRankings_EmptyPortfolio(t *testing.T) {
	s := bench.NewSession()
	_, err := s.Rankings(nil, nil, nil)
	require.ErrorIs(t, err, bench.ErrNoAlgorithms)
}

func TestExactWrappers_Agree(t *testing.T) {
	var (
		s      = bench.NewSession()
		cities = mustCities(t, 7, 10)
	)

	brute, err := s.Run(bench.Exhaustive, cities, nil)
	require.NoError(t, err)
	exact, err := s.Run(bench.HeldKarp, cities, nil)
	require.NoError(t, err)

	assert.InDelta(t, brute.Len, exact.Len, 1e-9, "both exact solvers must find the optimum")
}

func TestRepeatedNearest_NameEncodesConfig(t *testing.T) {
	a := bench.RepeatedNearest(10, 42)
	b := bench.RepeatedNearest(25, 42)
	assert.Equal(t, "rep-nearest(k=10,seed=42)", a.Name)
	assert.NotEqual(t, a.Name, b.Name, "distinct configs must cache independently")
}
