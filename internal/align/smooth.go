package align

// anchor is a line with a confirmed, smoothed timestamp in the reference
// stream. Anchors stay sorted by original start time.
type anchor struct {
	linePos    int
	origStart  float64
	finalStart float64
}

// smoothByScene partitions candidates into scenes (a new scene starts when
// consecutive original start times are more than sceneGap seconds apart)
// and replaces each candidate's drift with the scene median. Per-word drift
// is noisy; per-scene drift is stable against single-word mismatches. The
// assumption is a constant audio/text offset within a scene, which is why
// scene boundaries are re-detected from gaps rather than carried over.
func smoothByScene(candidates []candidate, sceneGap float64) []anchor {
	if len(candidates) == 0 {
		return nil
	}

	var scenes [][]candidate
	current := []candidate{candidates[0]}
	for i := 1; i < len(candidates); i++ {
		if candidates[i].origStart-candidates[i-1].origStart > sceneGap {
			scenes = append(scenes, current)
			current = nil
		}
		current = append(current, candidates[i])
	}
	scenes = append(scenes, current)

	anchors := make([]anchor, 0, len(candidates))
	for _, scene := range scenes {
		drifts := make([]float64, len(scene))
		for i, c := range scene {
			drifts[i] = c.drift
		}
		sceneDrift := median(drifts)
		for _, c := range scene {
			anchors = append(anchors, anchor{
				linePos:    c.linePos,
				origStart:  c.origStart,
				finalStart: c.origStart + sceneDrift,
			})
		}
	}
	return anchors
}
