// Package dna holds the small sequence utilities the search pipeline
// leans on: alphabet validation, GC content, and reproducible synthetic
// sequence generation.
//
// The alphabet is the fixed four-symbol set {A, T, G, C} — an explicit
// constant, not a parameter. Validation is deliberately decoupled from
// matching: the motif package compares raw bytes and callers decide
// whether to validate first.
//
// ⚙️ Usage:
//
//	import "github.com/qsearchlab/motiq/dna"
//
//	ok := dna.Valid([]byte("ATGC"))       // true
//	gc := dna.GCContent([]byte("GGCC"))   // 1.0
//
//	gen := dna.NewGenerator(42)           // deterministic stream
//	seq := gen.Sequence(100)              // same seed ⇒ same bases
//
// Determinism:
//
//	Each Generator owns its private rand.Rand seeded at construction.
//	There is no process-global RNG state, so concurrent callers with
//	their own Generators never interfere with each other's streams.
package dna
