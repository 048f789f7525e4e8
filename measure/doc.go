// Package measure summarizes measurement-count distributions coming back
// from a simulated quantum search.
//
// 🚀 What is measure?
//
//	The last stage of the pipeline: a frequency table
//	(basis-state label → shot count) plus the shot total go in, and a
//	fixed set of information-theoretic metrics comes out:
//	  • SuccessProbability — recorded shots / total shots
//	  • MaxAmplitude       — largest single count / total shots
//	  • Entropy            — Shannon entropy of the distribution, in bits
//	  • NumUniqueStates    — distinct states observed
//
// TrimCounts normalizes raw simulator keys first: spaces stripped,
// short labels zero-padded, long labels truncated, collisions summed.
//
// ⚙️ Usage:
//
//	import "github.com/qsearchlab/motiq/measure"
//
//	counts := measure.TrimCounts(raw, nQubits)
//	stats, err := measure.Analyze(counts, matches, 1000)
//	if err != nil {
//	  // handle ErrZeroShots
//	}
//
// The one hard failure is a non-positive shot total: dividing by it
// would leak NaN/Inf into every metric, so Analyze rejects it with
// ErrZeroShots instead. Everything else is total.
package measure
