package align

import "testing"

// makeCandidates builds candidates spaced interval seconds apart with a
// constant drift.
func makeCandidates(n int, interval, drift float64) []candidate {
	out := make([]candidate, n)
	for i := range out {
		orig := float64(i) * interval
		out[i] = candidate{
			linePos:      i,
			origStart:    orig,
			rawMatchTime: orig + drift,
			drift:        drift,
		}
	}
	return out
}

func TestFilterDriftRejectsSingleOutlier(t *testing.T) {
	cands := makeCandidates(30, 3.0, 2.0)
	// One deliberately shifted outlier well beyond the 1.5s threshold.
	cands[14].drift = 9.0
	cands[14].rawMatchTime = cands[14].origStart + 9.0

	kept, rejected := filterDrift(cands, DefaultDriftWindow, DefaultOutlierThreshold)

	if rejected != 1 {
		t.Fatalf("rejected = %d, want 1", rejected)
	}
	if len(kept) != 29 {
		t.Fatalf("kept = %d, want 29", len(kept))
	}
	for _, c := range kept {
		if c.linePos == 14 {
			t.Error("outlier at position 14 survived the filter")
		}
	}
}

func TestFilterDriftToleratesSceneOffsetChange(t *testing.T) {
	// Two halves with a 1.0s offset change: inside the threshold, so a
	// genuine scene shift must not be treated as an outlier.
	cands := makeCandidates(20, 3.0, 2.0)
	for i := 10; i < 20; i++ {
		cands[i].drift = 3.0
		cands[i].rawMatchTime = cands[i].origStart + 3.0
	}

	kept, rejected := filterDrift(cands, DefaultDriftWindow, DefaultOutlierThreshold)
	if rejected != 0 {
		t.Errorf("rejected = %d, want 0", rejected)
	}
	if len(kept) != 20 {
		t.Errorf("kept = %d, want 20", len(kept))
	}
}

func TestFilterDriftEmpty(t *testing.T) {
	kept, rejected := filterDrift(nil, DefaultDriftWindow, DefaultOutlierThreshold)
	if kept != nil || rejected != 0 {
		t.Errorf("got %v, %d for empty input", kept, rejected)
	}
}

func TestMedian(t *testing.T) {
	cases := []struct {
		in   []float64
		want float64
	}{
		{[]float64{3, 1, 2}, 2},
		{[]float64{4, 1, 3, 2}, 2.5},
		{[]float64{5}, 5},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := median(tc.in); got != tc.want {
			t.Errorf("median(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
