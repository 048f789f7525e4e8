package motif

import (
	"sort"
	"sync"
)

// FindParallel — fork–join exact motif scan
//
// Description:
//
//	FindParallel returns exactly what Find returns, computed across
//	opts.NumWorkers workers. The valid start-offset range [0, n-m]
//	(searchLen = n-m+1 candidates) is split into NumWorkers contiguous,
//	non-overlapping chunks of searchLen/NumWorkers offsets; the last
//	chunk absorbs the remainder so every offset is scanned exactly once.
//
// Algorithm Outline:
//  1. Guard the same empty-input cases as Find before spawning anything.
//  2. Reject NumWorkers ≤ 0 with ErrBadWorkers.
//  3. Launch one goroutine per chunk; each scans its offsets with the
//     sequential inner loop into a private result slot. sequence and
//     pattern are read-only during the whole parallel phase, so no
//     locks are needed.
//  4. Wait on the join barrier, concatenate all slots, sort ascending.
//     Workers finish in arbitrary order; the final sort — not the
//     concatenation — restores the global ordering Find guarantees.
//
// Chunks of size zero (NumWorkers > searchLen) contribute nothing.
// There is no cancellation path: once dispatched, every worker is
// awaited. Callers wanting bounded latency must wrap this call.
//
// Complexity:
//
//	Time   = O(n·m / NumWorkers) scan + O(h·log h) merge sort over h hits
//	Memory = O(h) for per-worker slots and the merged result
//
// Errors:
//   - ErrBadWorkers — NumWorkers ≤ 0.
func FindParallel(sequence, pattern []byte, opts *Options) ([]int, error) {
	workers := DefaultNumWorkers
	if opts != nil {
		workers = opts.NumWorkers
	}
	if workers <= 0 {
		return nil, ErrBadWorkers
	}

	n, m := len(sequence), len(pattern)
	if m == 0 || n == 0 || m > n {
		return nil, nil
	}

	searchLen := n - m + 1
	chunkSize := searchLen / workers

	// One private slot per worker; no shared mutable state.
	slots := make([][]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if w == workers-1 {
			end = searchLen // last chunk absorbs the remainder
		}

		go func(w, start, end int) {
			defer wg.Done()
			var local []int
			for i := start; i < end; i++ {
				if matchAt(sequence, pattern, i) {
					local = append(local, i)
				}
			}
			slots[w] = local
		}(w, start, end)
	}
	wg.Wait()

	var all []int
	for _, local := range slots {
		all = append(all, local...)
	}
	sort.Ints(all)
	return all, nil
}
