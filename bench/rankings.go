package bench

import (
	"math"
	"sort"

	"github.com/katalvlaran/tourbench/tour"
)

// RankTable holds, per algorithm, how often it achieved each rank across a
// test set: Counts[a][r] is the number of instances on which algorithm a
// produced the r-th shortest tour (rank 0 is shortest). Equal rounded
// lengths share the better rank. This is the raw data behind a comparison
// table; rendering belongs to the reporting consumer.
type RankTable struct {
	Algorithms []string
	Counts     [][]int
}

// Rankings benchmarks every algorithm over the test set (each followed by
// opt when non-nil) and tallies the per-instance ranks. Lengths are
// rounded to the nearest unit before comparison, matching how the
// benchmark tables are usually read.
//
// Complexity: the underlying runs dominate; the tally is
// O(instances * algorithms * log(algorithms)).
func (s *Session) Rankings(algs []Algorithm, tests []tour.Cities, opt *Optimizer) (RankTable, error) {
	if len(algs) == 0 {
		return RankTable{}, ErrNoAlgorithms
	}

	// lengths[a][t] is the rounded tour length of algorithm a on test t.
	lengths := make([][]float64, len(algs))
	var (
		a, t int
		runs []Result
		err  error
	)
	for a = 0; a < len(algs); a++ {
		runs, err = s.Benchmark(algs[a], tests, opt)
		if err != nil {
			return RankTable{}, err
		}
		lengths[a] = make([]float64, len(tests))
		for t = 0; t < len(runs); t++ {
			lengths[a][t] = math.Round(runs[t].Len)
		}
	}

	table := RankTable{
		Algorithms: make([]string, len(algs)),
		Counts:     make([][]int, len(algs)),
	}
	for a = 0; a < len(algs); a++ {
		table.Algorithms[a] = algs[a].Name
		table.Counts[a] = make([]int, len(algs))
	}

	ordered := make([]float64, len(algs))
	var r int
	for t = 0; t < len(tests); t++ {
		for a = 0; a < len(algs); a++ {
			ordered[a] = lengths[a][t]
		}
		sort.Float64s(ordered)
		for a = 0; a < len(algs); a++ {
			// Index of the first equal length = shared best rank on ties.
			r = sort.SearchFloat64s(ordered, lengths[a][t])
			table.Counts[a][r]++
		}
	}

	return table, nil
}
