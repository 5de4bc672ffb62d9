//go:build tenzipacked

package sim

// modeScanner is the histogram mode scan a trial carries. The packed
// build owns its candidate table and hands it to the packed scan by
// reference.
type modeScanner struct {
	table *candidateTable
}

func newModeScanner(numSides int) modeScanner {
	return modeScanner{table: newCandidateTable(numSides)}
}

func (s modeScanner) mode(counts []int) int {
	return modePacked(s.table, counts)
}
