package transcript

// Zone is an inclusive index range of segments repaired as one unit.
type Zone struct {
	Start int
	End   int
}

// MergeZones groups sorted suspicious indices into zones, merging two
// neighbors when at most maxGap healthy segments sit between them. Healthy
// segments swallowed into a zone are re-recognized along with the bad ones,
// which gives the decoder enough context to get the boundary words right.
func MergeZones(indices []int, maxGap int) []Zone {
	if len(indices) == 0 {
		return nil
	}
	zones := []Zone{{Start: indices[0], End: indices[0]}}
	for _, idx := range indices[1:] {
		last := &zones[len(zones)-1]
		if idx-last.End-1 <= maxGap {
			last.End = idx
		} else {
			zones = append(zones, Zone{Start: idx, End: idx})
		}
	}
	return zones
}
