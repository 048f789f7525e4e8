// Package oracle turns classical match positions into the numeric
// structures a simulated Grover search consumes.
//
// 🚀 What is oracle?
//
//	The bridge between the matcher and the host simulator:
//	  • Diagonal      — phase-flip diagonal: -1 at marked indices, +1 elsewhere
//	  • Iterations    — optimal Grover iteration count ⌊(π/4)·√(N/M)⌋
//	  • QubitsNeeded  — qubits to address a candidate range
//	  • EncodePositions / StateMappings — position ⇄ basis-state labels
//
// ✨ Guarantees:
//   - Every diagonal entry is exactly (1+0i) or (-1+0i)
//   - Out-of-range and duplicate match indices are harmless (ignored /
//     idempotent), never errors
//   - Iterations is total: non-positive counts yield 1, never 0 or less
//   - Labels are MSB-first, zero-padded, stable across calls
//
// ⚙️ Usage:
//
//	import "github.com/qsearchlab/motiq/oracle"
//
//	diag := oracle.Diagonal(matches, 1<<nQubits)
//	iters := oracle.Iterations(numCandidates, len(matches))
//	enc, dec := oracle.StateMappings(numCandidates, nQubits)
//
// The circuit that applies the diagonal as a gate lives in the host
// simulator; this package only builds the numbers.
package oracle
