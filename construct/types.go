package construct

import "errors"

// DefaultSplitThreshold is the instance size below which DivideAndConquer
// switches to the exhaustive solver.
const DefaultSplitThreshold = 7

// DefaultRestarts is the start-city count used by the repeated
// nearest-neighbor portfolio entry.
const DefaultRestarts = 10

var (
	// ErrBadSplitThreshold indicates a divide-and-conquer split threshold
	// below 2; the recursion could not terminate.
	ErrBadSplitThreshold = errors.New("construct: split threshold must be at least 2")

	// ErrBadRestartCount indicates a repeated nearest-neighbor restart
	// count k <= 0.
	ErrBadRestartCount = errors.New("construct: restart count must be positive")

	// ErrStartOutOfRange indicates a start index outside [0..n-1].
	ErrStartOutOfRange = errors.New("construct: start city index out of range")

	// errGreedyIncomplete guards the structurally unreachable branch of the
	// greedy joiner; surfacing it would indicate a bookkeeping bug.
	errGreedyIncomplete = errors.New("construct: greedy joining left more than one segment")
)
