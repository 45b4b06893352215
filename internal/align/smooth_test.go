package align

import (
	"math"
	"testing"
)

func TestSmoothBySceneMedianPerScene(t *testing.T) {
	// Two scenes separated by a 30s source gap: drifts 2.0/2.2/2.1 and
	// 5.0/5.4.
	cands := []candidate{
		{linePos: 0, origStart: 0, drift: 2.0},
		{linePos: 1, origStart: 3, drift: 2.2},
		{linePos: 2, origStart: 6, drift: 2.1},
		{linePos: 3, origStart: 36, drift: 5.0},
		{linePos: 4, origStart: 39, drift: 5.4},
	}
	for i := range cands {
		cands[i].rawMatchTime = cands[i].origStart + cands[i].drift
	}

	anchors := smoothByScene(cands, DefaultSceneGapSeconds)
	if len(anchors) != 5 {
		t.Fatalf("anchors = %d, want 5", len(anchors))
	}

	// Scene 1 median drift is 2.1, scene 2 is 5.2.
	wantDrifts := []float64{2.1, 2.1, 2.1, 5.2, 5.2}
	for i, a := range anchors {
		got := a.finalStart - a.origStart
		if math.Abs(got-wantDrifts[i]) > 1e-9 {
			t.Errorf("anchor %d drift = %v, want %v", i, got, wantDrifts[i])
		}
	}
}

func TestSmoothBySceneIdempotent(t *testing.T) {
	cands := []candidate{
		{linePos: 0, origStart: 0, drift: 1.0},
		{linePos: 1, origStart: 2, drift: 1.4},
		{linePos: 2, origStart: 4, drift: 1.2},
		{linePos: 3, origStart: 20, drift: -0.5},
		{linePos: 4, origStart: 22, drift: -0.7},
	}

	once := smoothByScene(cands, DefaultSceneGapSeconds)

	// Re-smoothing already-smoothed anchors must not move them: the median
	// of equal values is that value.
	again := make([]candidate, len(once))
	for i, a := range once {
		again[i] = candidate{
			linePos:      a.linePos,
			origStart:    a.origStart,
			rawMatchTime: a.finalStart,
			drift:        a.finalStart - a.origStart,
		}
	}
	twice := smoothByScene(again, DefaultSceneGapSeconds)

	for i := range once {
		if math.Abs(once[i].finalStart-twice[i].finalStart) > 1e-9 {
			t.Errorf("anchor %d moved on second smoothing: %v -> %v",
				i, once[i].finalStart, twice[i].finalStart)
		}
	}
}

func TestSmoothBySceneEmpty(t *testing.T) {
	if got := smoothByScene(nil, DefaultSceneGapSeconds); got != nil {
		t.Errorf("got %v for empty input", got)
	}
}
