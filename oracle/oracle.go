package oracle

// Diagonal — phase-flip diagonal construction
//
// Description:
//
//	Diagonal builds the length-databaseSize diagonal of a phase oracle:
//	entry i is (-1+0i) when i appears in matches, (1+0i) otherwise.
//	The host simulator applies it as a diagonal gate over the search
//	register.
//
// Behavior:
//   - Match indices ≥ databaseSize (or negative) are silently ignored:
//     the database is usually padded to a power of two, and positions
//     beyond it simply have no amplitude to flip.
//   - Duplicate indices are idempotent — an entry flips to -1 once and
//     stays there.
//   - databaseSize ≤ 0 yields an empty diagonal.
//
// Complexity:
//
//	Time   = O(databaseSize + len(matches))
//	Memory = O(databaseSize)
func Diagonal(matches []int, databaseSize int) []complex128 {
	if databaseSize <= 0 {
		return nil
	}
	diag := make([]complex128, databaseSize)
	for i := range diag {
		diag[i] = complex(1, 0)
	}
	for _, m := range matches {
		if m >= 0 && m < databaseSize {
			diag[m] = complex(-1, 0)
		}
	}
	return diag
}
