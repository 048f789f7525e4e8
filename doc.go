// Package motiq is the classical engine behind a quantum-inspired DNA
// motif search — exact pattern matching plus the numeric glue a simulated
// Grover search needs around it.
//
// 🚀 What is motiq?
//
//	A small, self-contained library that brings together:
//		• Exact matching: naive sequential scan & fork–join parallel scan
//		• Oracle support: phase-flip diagonals, iteration estimates,
//		  position ⇄ basis-state encodings
//		• Measurement analysis: success probability, peak amplitude,
//		  Shannon entropy, counts normalization
//		• DNA utilities: alphabet validation, GC content, reproducible
//		  synthetic sequences
//
// ✨ Why choose motiq?
//
//   - Deterministic – same seed ⇒ same sequence, same inputs ⇒ same matches
//   - Race-free – workers share only read-only slices, join on one barrier
//   - Pure Go – no cgo, no hidden deps beyond the test harness
//   - Total – data-shape edge cases return defined empty results, not errors
//
// Under the hood, everything is organized under four subpackages:
//
//	motif/   — sequential & parallel exact substring matchers
//	oracle/  — diagonal builder, Grover iteration estimator, encodings
//	measure/ — measurement-count statistics & normalization
//	dna/     — sequence validation, GC content, seeded generation
//
// Quick flow:
//
//	    sequence + motif ──▶ motif.Find ──▶ positions
//	    positions ──▶ oracle.Diagonal / oracle.Iterations
//	    simulator counts ──▶ measure.Analyze ──▶ Stats
//
// The quantum circuit itself — oracles as gates, diffusion, shot
// execution — lives in the host simulator, not here.
//
//	go get github.com/qsearchlab/motiq
package motiq
