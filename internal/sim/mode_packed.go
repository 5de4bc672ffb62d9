package sim

// The packed mode scan folds each bucket into a single comparable key,
// count in the high bits and face in the low bits, so one branch-free
// max over keys yields both the winning count and the winning face.
// Because faces are unique, a larger face beats an equal count, which
// matches the serial scan's last-face tie-break.

const packedFaceBits = 32

// candidateTable holds the precomputed per-face key fragments for a
// given side count. A table is immutable once built; each trial owns
// the one its scanner uses, so nothing is shared or looked up through
// package globals.
type candidateTable struct {
	faces []uint64
}

func newCandidateTable(numSides int) *candidateTable {
	t := &candidateTable{faces: make([]uint64, numSides)}
	for k := range t.faces {
		t.faces[k] = uint64(k)
	}
	return t
}

func (t *candidateTable) mode(counts []int) int {
	best := uint64(counts[0]) << packedFaceBits
	for k := 1; k < len(counts); k++ {
		key := uint64(counts[k])<<packedFaceBits | t.faces[k]
		if key > best {
			best = key
		}
	}
	return int(best&(1<<packedFaceBits-1)) + 1
}

func modePacked(t *candidateTable, counts []int) int {
	return t.mode(counts)
}
