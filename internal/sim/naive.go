package sim

// NaiveStrategy commits to the majority face of the first roll and
// re-rolls everything else until all dice land on it.
type NaiveStrategy struct {
	state

	// mode is the majority face locked in on the first step, 0 until
	// then.
	mode int
}

// NewNaive creates a naive trial over numDice dice with numSides sides.
func NewNaive(numSides, numDice int, r Roller) *NaiveStrategy {
	return &NaiveStrategy{state: newState(numSides, numDice, r)}
}

// Step keeps only the cached majority face's bucket.
func (n *NaiveStrategy) Step() {
	if n.mode == 0 {
		n.mode = n.scan.mode(n.buckets)
	}
	keep := n.mode - 1

	for k := range n.buckets {
		if k != keep {
			n.buckets[k] = 0
		}
	}

	n.finishRound(n.buckets[keep])
}

// Mode returns the face the strategy committed to, or 0 before the
// first step.
func (n *NaiveStrategy) Mode() int { return n.mode }
