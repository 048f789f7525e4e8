package oracle

import "math"

// QubitsNeeded returns the number of qubits required to address
// numCandidates distinct positions: ⌈log2(numCandidates)⌉, with a floor
// of one qubit for degenerate ranges (numCandidates ≤ 1).
//
// Complexity: O(1).
func QubitsNeeded(numCandidates int) int {
	if numCandidates <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(numCandidates))))
}

// EncodePositions returns the basis-state label of every position in
// [0, numCandidates): the MSB-first binary expansion of the position,
// zero-padded to nQubits characters. Labels are stable across calls and
// match the key format measurement counts are normalized to.
//
// numCandidates ≤ 0 yields nil; nQubits ≤ 0 yields empty labels.
//
// Complexity:
//
//	Time   = O(numCandidates · nQubits)
//	Memory = O(numCandidates · nQubits)
func EncodePositions(numCandidates, nQubits int) []string {
	if numCandidates <= 0 {
		return nil
	}
	labels := make([]string, 0, numCandidates)
	buf := make([]byte, nQubits)
	for pos := 0; pos < numCandidates; pos++ {
		for bit := nQubits - 1; bit >= 0; bit-- {
			if (pos>>bit)&1 == 1 {
				buf[nQubits-1-bit] = '1'
			} else {
				buf[nQubits-1-bit] = '0'
			}
		}
		labels = append(labels, string(buf))
	}
	return labels
}

// StateMappings returns the forward (position → label) and inverse
// (label → position) encoding maps over [0, numCandidates), with labels
// as produced by EncodePositions. The inverse map is what the host uses
// to decode measured basis states back into sequence offsets.
//
// Complexity: O(numCandidates · nQubits) time and memory.
func StateMappings(numCandidates, nQubits int) (map[int]string, map[string]int) {
	labels := EncodePositions(numCandidates, nQubits)
	encode := make(map[int]string, len(labels))
	decode := make(map[string]int, len(labels))
	for pos, label := range labels {
		encode[pos] = label
		decode[label] = pos
	}
	return encode, decode
}
