package sim

import "sort"

// ModeFromCounts returns the 1-based face whose bucket count is
// largest. Ties resolve to the last such face. Trials go through
// their own modeScanner instead, which the packed build swaps for the
// table-backed scan under the same contract.
func ModeFromCounts(counts []int) int {
	return modeSerial(counts)
}

func modeSerial(counts []int) int {
	mode, best := 0, counts[0]
	for k, c := range counts[1:] {
		if c >= best {
			mode, best = k+1, c
		}
	}
	return mode + 1
}

// TopTwoModesFromCounts returns the two faces with the highest bucket
// counts, largest first. Ties resolve to the higher face for both
// positions. Needs at least two faces.
func TopTwoModesFromCounts(counts []int) (int, int) {
	order := make([]int, len(counts))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] < counts[order[b]]
	})
	n := len(order)
	return order[n-1] + 1, order[n-2] + 1
}

// AntiModes returns the faces to re-roll away: the least-represented
// nonzero faces, in ascending order. With at most one distinct face
// left there is nothing to discard. When every surviving face is tied
// with the mode, only the first face is returned; zeroing a single
// bucket is what keeps an all-tied histogram shrinking.
func AntiModes(counts []int) []int {
	modeCount := 0
	for _, c := range counts {
		if c > modeCount {
			modeCount = c
		}
	}

	numNonzero := 0
	firstNonzero := 0
	minCount := 0
	for k, c := range counts {
		if c == 0 {
			continue
		}
		if numNonzero == 0 {
			firstNonzero = k
			minCount = c
		} else if c < minCount {
			minCount = c
		}
		numNonzero++
	}

	if numNonzero <= 1 {
		return nil
	}
	if minCount == modeCount {
		return []int{firstNonzero + 1}
	}

	var faces []int
	for k, c := range counts {
		if c == minCount {
			faces = append(faces, k+1)
		}
	}
	return faces
}
