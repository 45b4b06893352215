package transcript

import "testing"

func repairedSeg(start, end float64, text string) Segment {
	return Segment{Start: start, End: end, Text: text, Provenance: ProvenanceRepaired}
}

func TestStitchPairDropsFuzzyDuplicate(t *testing.T) {
	prev := seg(0, 2, "I think so, honestly.")
	curr := seg(2.5, 4, "I think so honestly")

	res := stitchPair(prev, curr)
	if res.action != stitchDropCurr {
		t.Errorf("action = %v, want drop for a near-identical repetition", res.action)
	}
}

func TestStitchPairKeepsDistantRepetition(t *testing.T) {
	// The same words three minutes later are a legitimate repeat.
	prev := seg(0, 2, "I think so, honestly.")
	curr := seg(180, 182, "I think so honestly")

	if res := stitchPair(prev, curr); res.action != stitchKeep {
		t.Errorf("action = %v, want keep for distant repetition", res.action)
	}
}

func TestStitchPairTrimsOverlapOnRepairedSide(t *testing.T) {
	prev := repairedSeg(0, 2, "and then we went to the store")
	curr := repairedSeg(2.1, 4, "to the store for some milk")

	res := stitchPair(prev, curr)
	if res.action != stitchKeep {
		t.Fatalf("action = %v, want keep", res.action)
	}
	if res.seg.Text != "for some milk" {
		t.Errorf("text = %q, want overlap trimmed", res.seg.Text)
	}
}

func TestStitchPairAbsorbsRestatedPrev(t *testing.T) {
	prev := repairedSeg(0, 1.5, "I went to")
	curr := repairedSeg(1.6, 4, "I went to the market yesterday morning")

	if res := stitchPair(prev, curr); res.action != stitchAbsorbPrev {
		t.Errorf("action = %v, want absorbPrev when curr restates prev", res.action)
	}
}

func TestStitchPairNeverSplicesTrustedDialogue(t *testing.T) {
	// Identical shapes to the absorb case above, but neither side came
	// from the repair loop, so the words must be left alone.
	prev := seg(0, 1.5, "I went to")
	curr := seg(1.6, 4, "I went to the market yesterday morning")

	res := stitchPair(prev, curr)
	if res.action != stitchKeep {
		t.Fatalf("action = %v, want keep", res.action)
	}
	if res.seg.Text != curr.Text {
		t.Errorf("text = %q, trusted dialogue must not be rewritten", res.seg.Text)
	}
}

func TestStitchPairDropsEmptyCurr(t *testing.T) {
	if res := stitchPair(seg(0, 2, "Hello."), seg(2, 4, "  ")); res.action != stitchDropCurr {
		t.Errorf("action = %v, want drop for empty text", res.action)
	}
}

func TestStitchBoundariesDropsSeamDuplicate(t *testing.T) {
	segs := []Segment{
		seg(0, 2, "Before the zone."),
		repairedSeg(2.2, 4, "Before the zone"),
		repairedSeg(4.2, 6, "Inside the zone."),
		seg(6.2, 8, "After the zone."),
	}

	out, end := StitchBoundaries(segs, 1, 2)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3 after dropping the seam duplicate", len(out))
	}
	if end != 1 {
		t.Errorf("adjusted end = %d, want 1", end)
	}
	if out[1].Text != "Inside the zone." {
		t.Errorf("out[1] = %q, want the surviving repaired segment", out[1].Text)
	}
}

func TestDedupeWindowRemovesAdjacentDuplicate(t *testing.T) {
	segs := []Segment{
		seg(0, 2, "Hello there."),
		seg(2.1, 4, "Hello there."),
		seg(5, 7, "Something else entirely."),
	}

	out := DedupeWindow(segs, 0, 0)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Text != "Hello there." || out[1].Text != "Something else entirely." {
		t.Errorf("unexpected survivors: %+v", out)
	}
}

func TestDedupeWindowLeavesDistantSegmentsAlone(t *testing.T) {
	segs := []Segment{
		seg(0, 2, "Hello there."),
		seg(30, 32, "Hello there."),
	}
	if out := DedupeWindow(segs, 0, 1); len(out) != 2 {
		t.Errorf("len = %d, distant repetitions must survive", len(out))
	}
}

func TestCleanupRedundanciesCollapsesAdjacentPairs(t *testing.T) {
	segs := []Segment{
		seg(0, 2, "We should go now."),
		seg(2.1, 4, "We should go now"),
		seg(4.2, 6, "The car is waiting."),
	}
	out := CleanupRedundancies(segs)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[1].Text != "The car is waiting." {
		t.Errorf("out[1] = %q", out[1].Text)
	}
}
