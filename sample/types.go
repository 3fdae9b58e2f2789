package sample

import "errors"

// Default sampling rectangle, matching the classic benchmark map.
const (
	DefaultWidth  = 9999.0
	DefaultHeight = 6666.0
)

var (
	// ErrBadDimensions indicates a non-positive sampling rectangle or a
	// negative city count.
	ErrBadDimensions = errors.New("sample: width, height must be positive and n non-negative")

	// ErrBadSampleCount indicates a requested subset size k <= 0.
	ErrBadSampleCount = errors.New("sample: subset size must be positive")
)
