package dna

import "math/rand"

// Generator produces reproducible synthetic DNA sequences.
//
// Each Generator owns a private deterministic *rand.Rand seeded at
// construction: same seed ⇒ identical output, and independent
// Generators never share state, so concurrent use with separate
// instances is safe. A single Generator is NOT goroutine-safe —
// math/rand.Rand is not — so do not share one across goroutines.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator with its own deterministic stream.
// The seed is used verbatim; reproducibility across calls and platforms
// is the contract, since generated sequences back test fixtures and
// benchmarks.
//
// Complexity: O(1).
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Sequence returns length bases drawn uniformly from Bases.
// length ≤ 0 yields an empty sequence.
//
// Note that Sequence advances the generator's stream: two consecutive
// calls on one Generator produce different sequences, while two
// Generators built from the same seed reproduce each other call by call.
//
// Complexity: O(length).
func (g *Generator) Sequence(length int) []byte {
	if length <= 0 {
		return nil
	}
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = Bases[g.rng.Intn(len(Bases))]
	}
	return seq
}
