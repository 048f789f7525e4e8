package dna

// Bases is the fixed nucleotide alphabet, in the order synthetic
// generation draws from it.
const Bases = "ATGC"

// Valid reports whether every symbol of seq belongs to {A, T, G, C}.
// An empty sequence is vacuously valid. Lowercase and ambiguity codes
// (N, IUPAC wildcards) are rejected.
//
// Complexity: O(n).
func Valid(seq []byte) bool {
	for _, b := range seq {
		if b != 'A' && b != 'T' && b != 'G' && b != 'C' {
			return false
		}
	}
	return true
}

// GCContent returns the fraction of G and C symbols in seq.
// An empty sequence yields 0.0 by convention, not an error.
//
// Complexity: O(n).
func GCContent(seq []byte) float64 {
	if len(seq) == 0 {
		return 0.0
	}
	gc := 0
	for _, b := range seq {
		if b == 'G' || b == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}
