package measure

import "strings"

// TrimCounts normalizes raw simulator keys to nQubits-character labels
// and aggregates the counts of keys that collide after normalization.
//
// Simulators report classical registers with cosmetic spacing and, when
// ancilla bits are measured, with more bits than the search register
// holds. Normalization, per key:
//  1. strip every space;
//  2. shorter than nQubits ⇒ left-pad with '0';
//  3. longer than nQubits ⇒ keep the first nQubits characters
//     (the search register bits, MSB-first).
//
// The result's keys line up with oracle.EncodePositions labels.
//
// Complexity: O(total key length).
func TrimCounts(raw map[string]int, nQubits int) map[string]int {
	trimmed := make(map[string]int, len(raw))
	for state, count := range raw {
		clean := strings.ReplaceAll(state, " ", "")
		if len(clean) < nQubits {
			clean = strings.Repeat("0", nQubits-len(clean)) + clean
		} else if len(clean) > nQubits {
			clean = clean[:nQubits]
		}
		trimmed[clean] += count
	}
	return trimmed
}
