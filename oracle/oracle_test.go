package oracle_test

import (
	"testing"

	"github.com/qsearchlab/motiq/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiagonal_MarksMatches verifies plus-one everywhere except matched
// indices, which carry the -1 phase.
func TestDiagonal_MarksMatches(t *testing.T) {
	diag := oracle.Diagonal([]int{2}, 4)
	require.Len(t, diag, 4)
	assert.Equal(t, []complex128{1, 1, -1, 1}, diag, "only index 2 is flipped")
}

// TestDiagonal_OutOfRangeIgnored verifies matches beyond the database
// leave the diagonal untouched.
func TestDiagonal_OutOfRangeIgnored(t *testing.T) {
	diag := oracle.Diagonal([]int{10}, 4)
	assert.Equal(t, []complex128{1, 1, 1, 1}, diag, "out-of-range match has no effect")

	diag = oracle.Diagonal([]int{-1, 0}, 2)
	assert.Equal(t, []complex128{-1, 1}, diag, "negative index ignored, valid one applied")
}

// TestDiagonal_DuplicatesIdempotent verifies duplicate matches collapse:
// a flipped entry stays at -1, it is not flipped back.
func TestDiagonal_DuplicatesIdempotent(t *testing.T) {
	diag := oracle.Diagonal([]int{1, 1, 1}, 3)
	assert.Equal(t, []complex128{1, -1, 1}, diag, "repeated index flips once")
}

// TestDiagonal_EveryEntryUnitReal verifies the invariant that each entry
// is exactly (1+0i) or (-1+0i).
func TestDiagonal_EveryEntryUnitReal(t *testing.T) {
	diag := oracle.Diagonal([]int{0, 3, 5, 7}, 8)
	for i, d := range diag {
		assert.Zero(t, imag(d), "entry %d must be real", i)
		assert.Contains(t, []float64{1, -1}, real(d), "entry %d must be ±1", i)
	}
}

// TestDiagonal_EmptyDatabase verifies a non-positive size yields nil.
func TestDiagonal_EmptyDatabase(t *testing.T) {
	assert.Nil(t, oracle.Diagonal([]int{0}, 0))
	assert.Nil(t, oracle.Diagonal(nil, -1))
}

// TestIterations_KnownValue checks the canonical single-marked case:
// N=1e6, M=1 ⇒ ⌊(π/4)·1000⌋ = 785.
func TestIterations_KnownValue(t *testing.T) {
	assert.Equal(t, 785, oracle.Iterations(1_000_000, 1))
}

// TestIterations_DegenerateInputs verifies non-positive counts clamp to 1.
func TestIterations_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 1, oracle.Iterations(0, 5), "zero total clamps to 1")
	assert.Equal(t, 1, oracle.Iterations(100, 0), "zero marked clamps to 1")
	assert.Equal(t, 1, oracle.Iterations(-10, -2), "negative counts clamp to 1")
}

// TestIterations_NeverBelowOne verifies the clamp when the ratio rounds
// the estimate down to zero (marked ≥ total).
func TestIterations_NeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, oracle.Iterations(4, 4), "π/4·√1 floors to 0, clamped to 1")
	assert.Equal(t, 1, oracle.Iterations(2, 8), "marked beyond total still clamps to 1")
}

// TestIterations_GrowsWithRatio verifies monotonic growth in N/M.
func TestIterations_GrowsWithRatio(t *testing.T) {
	prev := 0
	for _, total := range []int{16, 64, 256, 1024, 4096} {
		it := oracle.Iterations(total, 1)
		assert.Greater(t, it, prev, "iterations must grow with the database")
		prev = it
	}
}
