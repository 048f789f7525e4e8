// Package motif locates every exact occurrence of a short nucleotide
// motif inside a long sequence, sequentially or across a fixed pool of
// workers.
//
// 🚀 What is motif?
//
//	The front door of the search pipeline: it turns (sequence, pattern)
//	into the ascending list of zero-based start offsets that the oracle
//	and iteration estimator consume.
//	  • Find         — single-pass naive scan, the correctness baseline
//	  • FindParallel — same contract, search range split over N workers
//
// ✨ Key guarantees:
//   - Overlapping occurrences are all reported (no occurrence skipping)
//   - Offsets are strictly ascending, identical for both entry points
//   - Empty pattern, empty sequence, or pattern longer than sequence
//     yield an empty result — defined outputs, never errors
//   - Workers share only read-only slices; one WaitGroup barrier, no locks
//
// ⚙️ Usage:
//
//	import "github.com/qsearchlab/motiq/motif"
//
//	hits := motif.Find(seq, []byte("ATCG"))
//
//	opts := motif.DefaultOptions()
//	opts.NumWorkers = 8
//	hits, err := motif.FindParallel(seq, []byte("ATCG"), &opts)
//
// Performance:
//
//   - Time:   O(n·m) worst case (naive compare, short-circuit on mismatch)
//   - Memory: O(hits) beyond the inputs
//
// The scan is deliberately preprocessing-free: it is the baseline other
// components are validated against, not an asymptotically optimal
// matcher. See example_test.go for worked scenarios.
package motif
