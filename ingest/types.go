package ingest

import "errors"

var (
	// ErrNoCities indicates that the source decoded cleanly but contained
	// no usable point records.
	ErrNoCities = errors.New("ingest: source contains no cities")

	// ErrBadScale indicates a zero projection scale; cities would collapse
	// onto a line.
	ErrBadScale = errors.New("ingest: projection scales must be non-zero")
)

// Default projection: degrees to planar units on the continental-US
// benchmark map.
const (
	DefaultLongScale = -48.0
	DefaultLatScale  = 69.0
)

// Options configures the projection and the record filter.
type Options struct {
	// LongScale and LatScale multiply longitude into X and latitude into Y.
	LongScale float64
	LatScale  float64

	// Skip lists state codes to drop from Records input (e.g. "AK", "HI").
	Skip map[string]bool
}

// Option is a functional option for the ingest readers.
type Option func(*Options)

// WithScale overrides both projection scales. Use WithScale(1, 1) for
// sources that already carry planar coordinates.
func WithScale(long, lat float64) Option {
	return func(o *Options) {
		o.LongScale = long
		o.LatScale = lat
	}
}

// WithSkip replaces the state-code skip list.
func WithSkip(codes ...string) Option {
	return func(o *Options) {
		o.Skip = make(map[string]bool, len(codes))
		for _, c := range codes {
			o.Skip[c] = true
		}
	}
}

// DefaultOptions returns the historical continental-US defaults:
// LongScale -48, LatScale 69, Alaska and Hawaii skipped.
func DefaultOptions() Options {
	return Options{
		LongScale: DefaultLongScale,
		LatScale:  DefaultLatScale,
		Skip:      map[string]bool{"AK": true, "HI": true},
	}
}

// apply folds the options over the defaults and validates them.
func apply(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.LongScale == 0 || o.LatScale == 0 {
		return Options{}, ErrBadScale
	}
	return o, nil
}
