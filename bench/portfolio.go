package bench

import (
	"fmt"

	"github.com/katalvlaran/tourbench/construct"
	"github.com/katalvlaran/tourbench/heldkarp"
	"github.com/katalvlaran/tourbench/tour"
	"github.com/katalvlaran/tourbench/twoopt"
)

// DefaultSampleSeed feeds the deterministic start-city sampling of the
// repeated nearest-neighbor portfolio entry.
const DefaultSampleSeed int64 = 42

// Ready-made wrappers around the construct package. Names are stable; the
// session cache and rankings key on them.
var (
	Exhaustive = Algorithm{Name: "exhaustive", Build: construct.Exhaustive}
	HeldKarp   = Algorithm{Name: "held-karp", Build: heldkarp.Solve}
	Nearest    = Algorithm{Name: "nearest", Build: construct.NearestNeighbor}
	Indexed    = Algorithm{Name: "nearest-rtree", Build: construct.NearestIndexed}
	Greedy     = Algorithm{Name: "greedy", Build: construct.Greedy}
	MST        = Algorithm{Name: "mst", Build: construct.MSTPreorder}
	Divide     = Algorithm{Name: "divide", Build: construct.DivideAndConquer}
)

// TwoOpt is the 2-opt segment-reversal optimizer.
var TwoOpt = Optimizer{Name: "2opt", Improve: twoopt.Optimize}

// RepeatedNearest wraps the multi-start nearest-neighbor constructor with
// a fixed restart count and sampling seed baked into the name, so distinct
// configurations cache independently.
func RepeatedNearest(k int, seed int64) Algorithm {
	return Algorithm{
		Name: repName(k, seed),
		Build: func(c tour.Cities) (tour.Tour, error) {
			return construct.RepeatedNearest(c, k, seed)
		},
	}
}

// repName renders "rep-nearest(k=10,seed=42)".
func repName(k int, seed int64) string {
	return fmt.Sprintf("rep-nearest(k=%d,seed=%d)", k, seed)
}

// DefaultPortfolio is the ensemble used when callers have no preference:
// every polynomial constructor, each worth optimizing.
func DefaultPortfolio() []Algorithm {
	return []Algorithm{
		Nearest,
		RepeatedNearest(construct.DefaultRestarts, DefaultSampleSeed),
		Greedy,
		MST,
		Divide,
	}
}
