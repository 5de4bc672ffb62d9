//go:build !tenzipacked

package sim

// modeScanner is the histogram mode scan a trial carries. The default
// build scans serially and needs no state.
type modeScanner struct{}

func newModeScanner(numSides int) modeScanner {
	return modeScanner{}
}

func (modeScanner) mode(counts []int) int {
	return modeSerial(counts)
}
