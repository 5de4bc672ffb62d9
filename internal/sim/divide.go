package sim

// DivideStrategy chases the two leading faces, recomputed every round,
// and collapses onto the front-runner once it holds at least half the
// dice.
type DivideStrategy struct {
	state
}

// NewDivide creates a divide trial over numDice dice with numSides
// sides.
func NewDivide(numSides, numDice int, r Roller) *DivideStrategy {
	return &DivideStrategy{state: newState(numSides, numDice, r)}
}

// Step keeps the top two buckets, or only the leader past the halfway
// mark.
func (d *DivideStrategy) Step() {
	first, second := 1, 1
	if d.numSides > 1 {
		first, second = TopTwoModesFromCounts(d.buckets)
	}

	// Once the leader passes the midpoint, pile everything onto it.
	if d.buckets[first-1] >= d.numDice/2 {
		second = first
	}

	for k := range d.buckets {
		if k != first-1 && k != second-1 {
			d.buckets[k] = 0
		}
	}

	d.finishRound(d.keptSum())
}
