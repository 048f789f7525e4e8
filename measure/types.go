// Package measure defines the statistics result and error sentinels.
package measure

import "errors"

// Sentinel errors for measurement analysis.
var (
	// ErrZeroShots is returned when totalShots ≤ 0: every metric divides
	// by the shot total, and propagating NaN/Inf silently is worse than
	// failing loudly.
	ErrZeroShots = errors.New("measure: totalShots must be positive")
)

// Stats is the fixed metric set Analyze produces.
//
// Fields:
//   - SuccessProbability — sum of all recorded counts / totalShots.
//   - MaxAmplitude       — largest single count / totalShots; the peak
//     of the measured distribution.
//   - Entropy            — Shannon entropy −Σ p·log2(p) in bits over
//     states with count > 0. Zero for a single-state distribution,
//     k bits for a uniform distribution over 2^k states.
//   - NumUniqueStates    — number of distinct state labels observed.
//
// All fields are float64 so the set mirrors the metric table the host
// simulator reports, NumUniqueStates included.
type Stats struct {
	SuccessProbability float64
	MaxAmplitude       float64
	Entropy            float64
	NumUniqueStates    float64
}
