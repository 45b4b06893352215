package align

// filterDrift rejects candidates whose drift deviates from the median of
// their local neighborhood by more than threshold seconds. The window is a
// rolling, overlapping span of up to `window` candidates on each side, so
// genuine scene-to-scene offset changes survive while a short word matched
// to the wrong occurrence does not.
func filterDrift(candidates []candidate, window int, threshold float64) ([]candidate, int) {
	if len(candidates) == 0 {
		return nil, 0
	}

	kept := make([]candidate, 0, len(candidates))
	rejected := 0

	for i, cand := range candidates {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > len(candidates) {
			hi = len(candidates)
		}

		neighborhood := make([]float64, 0, hi-lo)
		for _, n := range candidates[lo:hi] {
			neighborhood = append(neighborhood, n.drift)
		}

		dev := cand.drift - median(neighborhood)
		if dev < 0 {
			dev = -dev
		}
		if dev > threshold {
			rejected++
			continue
		}
		kept = append(kept, cand)
	}

	return kept, rejected
}
