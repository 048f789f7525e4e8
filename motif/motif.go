package motif

// Find — sequential exact motif scan
//
// Description:
//
//	Find reports every start offset i such that
//	sequence[i : i+len(pattern)] equals pattern byte-for-byte.
//	Occurrences may overlap; each one is reported.
//
// Algorithm Outline:
//  1. Let n = len(sequence), m = len(pattern).
//  2. If m == 0, n == 0, or m > n, return nil (defined empty result).
//  3. For every candidate offset i in [0, n-m]:
//     compare pattern left-to-right against sequence[i:],
//     short-circuiting on the first mismatching byte;
//     append i on a full match.
//
// No skip tables and no preprocessing: the scan is the correctness
// baseline the parallel matcher is checked against. A faster algorithm
// may replace it only if it preserves the ordering and the empty-input
// contract above.
//
// Complexity:
//
//	Time   = O(n·m) worst case, O(n) typical (early mismatch exit)
//	Memory = O(number of matches)
func Find(sequence, pattern []byte) []int {
	n, m := len(sequence), len(pattern)
	if m == 0 || n == 0 || m > n {
		return nil
	}

	var matches []int
	for i := 0; i <= n-m; i++ {
		if matchAt(sequence, pattern, i) {
			matches = append(matches, i)
		}
	}
	return matches
}

// matchAt reports whether pattern occurs in sequence at offset i.
// The caller guarantees i+len(pattern) <= len(sequence).
func matchAt(sequence, pattern []byte, i int) bool {
	for j := 0; j < len(pattern); j++ {
		if sequence[i+j] != pattern[j] {
			return false
		}
	}
	return true
}
