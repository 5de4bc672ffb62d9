package sim

// MergeStrategy re-rolls only the least-represented faces each round,
// letting the surviving groups merge over time.
type MergeStrategy struct {
	state
}

// NewMerge creates a merge trial over numDice dice with numSides sides.
func NewMerge(numSides, numDice int, r Roller) *MergeStrategy {
	return &MergeStrategy{state: newState(numSides, numDice, r)}
}

// Step zeroes exactly the anti-mode buckets; every other nonzero
// bucket survives.
func (m *MergeStrategy) Step() {
	for _, face := range AntiModes(m.buckets) {
		m.buckets[face-1] = 0
	}

	m.finishRound(m.keptSum())
}
