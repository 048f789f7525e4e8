package oracle

import "math"

// Iterations — optimal Grover iteration estimate
//
// Description:
//
//	For a database of totalItems entries containing markedItems marked
//	ones, the amplitude-amplification optimum is ⌊(π/4)·√(N/M)⌋
//	rotations. Fewer undershoots the marked amplitude; more rotates
//	past it.
//
// Behavior:
//   - totalItems ≤ 0 or markedItems ≤ 0 ⇒ 1 (a degenerate search still
//     runs one iteration rather than erroring).
//   - The result is clamped to ≥ 1: never 0, never negative.
//
// Complexity: O(1).
func Iterations(totalItems, markedItems int) int {
	if totalItems <= 0 || markedItems <= 0 {
		return 1
	}
	ratio := float64(totalItems) / float64(markedItems)
	iters := int(math.Floor(math.Pi / 4 * math.Sqrt(ratio)))
	if iters < 1 {
		return 1
	}
	return iters
}
