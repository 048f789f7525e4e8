// Package motif defines options and error sentinels for exact motif search.
package motif

import "errors"

// DefaultNumWorkers is the worker count used by DefaultOptions.
// The value is a fixed constant; core-count auto-detection is the
// caller's business, not this package's.
const DefaultNumWorkers = 4

// Sentinel errors for parallel search.
var (
	// ErrBadWorkers is returned when Options.NumWorkers is zero or negative:
	// partition arithmetic is undefined for a non-positive worker count.
	ErrBadWorkers = errors.New("motif: NumWorkers must be positive")
)

// Options configures FindParallel.
//
// Fields:
//   - NumWorkers — fixed number of workers the start-offset range is
//     split across. Must be ≥ 1. Workers exceeding the number of
//     candidate offsets simply receive empty chunks.
//
// Example:
//
//	opts := motif.DefaultOptions()
//	opts.NumWorkers = 8
//	hits, err := motif.FindParallel(seq, pat, &opts)
//	if err != nil {
//	  // handle ErrBadWorkers
//	}
type Options struct {
	NumWorkers int
}

// DefaultOptions returns Options with sane defaults:
//   - NumWorkers = DefaultNumWorkers (4).
func DefaultOptions() Options {
	return Options{
		NumWorkers: DefaultNumWorkers,
	}
}
