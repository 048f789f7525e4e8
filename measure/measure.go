package measure

import "math"

// Analyze — measurement-distribution summary
//
// Description:
//
//	Analyze reduces a frequency table (basis-state label → shot count)
//	and the caller-asserted shot total to the Stats metric set.
//	totalShots is taken on faith: it may exceed the recorded sum when
//	the simulator dropped outcomes, and it is not cross-checked.
//
// Behavior:
//   - SuccessProbability sums every recorded count over totalShots.
//     The expected slice is accepted but not consulted: states are not
//     decoded back to positions here.
//     TODO: decode labels via oracle.StateMappings and count only
//     shots whose position appears in expected.
//   - Entropy skips zero-count entries; p·log2(p) → 0 as p → 0, so
//     they contribute nothing either way.
//   - An empty table yields all-zero metrics.
//
// Errors:
//   - ErrZeroShots — totalShots ≤ 0.
//
// Complexity: O(len(counts)).
func Analyze(counts map[string]int, expected []int, totalShots int) (Stats, error) {
	if totalShots <= 0 {
		return Stats{}, ErrZeroShots
	}
	_ = expected // see TODO above

	shots := float64(totalShots)
	recorded := 0
	maxCount := 0
	entropy := 0.0

	for _, count := range counts {
		recorded += count
		if count > maxCount {
			maxCount = count
		}
		if count > 0 {
			p := float64(count) / shots
			entropy -= p * math.Log2(p)
		}
	}

	return Stats{
		SuccessProbability: float64(recorded) / shots,
		MaxAmplitude:       float64(maxCount) / shots,
		Entropy:            entropy,
		NumUniqueStates:    float64(len(counts)),
	}, nil
}
