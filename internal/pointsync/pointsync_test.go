package pointsync

import (
	"errors"
	"testing"

	"anchor/internal/subtitle"
)

func TestFilteredLinesSkipsPoorAnchors(t *testing.T) {
	lines := []subtitle.Line{
		{Start: 0, Text: "Hello there, how are you?"},
		{Start: 1000, Text: "♪ la la la ♪"},
		{Start: 2000, Text: "[door slams]"},
		{Start: 3000, Text: "No"},
		{Start: 4000, Text: "Commented out line", Comment: true},
		{Start: 5000, Text: "<i>Formatted</i> dialogue here."},
	}

	got := FilteredLines(lines, SectionAll, 100)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	if got[0].Index != 0 || got[1].Index != 5 {
		t.Errorf("indices = %d, %d, want 0, 5", got[0].Index, got[1].Index)
	}
	if got[1].Text != "Formatted dialogue here." {
		t.Errorf("markup not stripped: %q", got[1].Text)
	}
}

func TestFilteredLinesSections(t *testing.T) {
	var lines []subtitle.Line
	for i := 0; i < 10; i++ {
		lines = append(lines, subtitle.Line{Start: i * 1000, Text: "Spoken dialogue line."})
	}

	start := FilteredLines(lines, SectionStart, 3)
	if len(start) != 3 || start[0].Index != 0 {
		t.Errorf("start section = %+v", start)
	}
	end := FilteredLines(lines, SectionEnd, 3)
	if len(end) != 3 || end[2].Index != 9 {
		t.Errorf("end section = %+v", end)
	}
	all := FilteredLines(lines, SectionAll, 3)
	if len(all) != 10 {
		t.Errorf("all section must ignore limit, got %d", len(all))
	}
}

func TestApplyLinearCorrection(t *testing.T) {
	lines := []subtitle.Line{
		{Start: 10000, End: 12000},
		{Start: 50000, End: 53000},
	}

	// Reference runs at 2x speed with a +1s offset.
	m, c, err := ApplyLinearCorrection(lines, 10000, 21000, 50000, 101000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 2.0 {
		t.Errorf("slope = %v, want 2.0", m)
	}
	if c != 1000 {
		t.Errorf("offset = %v, want 1000", c)
	}
	if lines[0].Start != 21000 || lines[0].End != 25000 {
		t.Errorf("line 0 = %d..%d, want 21000..25000", lines[0].Start, lines[0].End)
	}
	if lines[1].Start != 101000 || lines[1].End != 107000 {
		t.Errorf("line 1 = %d..%d, want 101000..107000", lines[1].Start, lines[1].End)
	}
}

func TestApplyLinearCorrectionDegenerate(t *testing.T) {
	lines := []subtitle.Line{{Start: 0, End: 1000}}
	_, _, err := ApplyLinearCorrection(lines, 5000, 6000, 5000, 9000)
	if !errors.Is(err, ErrDegenerateInterval) {
		t.Fatalf("err = %v, want ErrDegenerateInterval", err)
	}
	if lines[0].Start != 0 || lines[0].End != 1000 {
		t.Error("lines mutated despite degenerate interval")
	}
}

func TestFindBestMatch(t *testing.T) {
	target := []LineRef{
		{Index: 0, StartMillis: 1000, Text: "Completely unrelated words"},
		{Index: 1, StartMillis: 2000, Text: "We need to talk about this."},
	}
	ref := []LineRef{
		{Index: 0, StartMillis: 5000, Text: "We need to talk about this!"},
		{Index: 1, StartMillis: 9000, Text: "Different content entirely"},
	}

	match, ok := FindBestMatch(target, ref, false)
	if !ok {
		t.Fatal("expected a match")
	}
	if match.TargetMillis != 2000 || match.RefMillis != 5000 {
		t.Errorf("match = %+v", match)
	}
	if match.Score < minMatchScore {
		t.Errorf("score %v below threshold", match.Score)
	}
}

func TestFindBestMatchRejectsWeakPairs(t *testing.T) {
	target := []LineRef{{StartMillis: 0, Text: "Nothing alike on this side"}}
	ref := []LineRef{{StartMillis: 0, Text: "Some other reference words"}}
	if _, ok := FindBestMatch(target, ref, false); ok {
		t.Error("dissimilar lines must not lock a sync point")
	}
}

func TestAutoSyncEndToEnd(t *testing.T) {
	// Reference timeline equals target scaled by 1.25 plus 500ms.
	scale := func(ms int) int { return ms*5/4 + 500 }

	texts := []string{
		"Morning, everyone, settle down.",
		"Today we start something new.",
		"Keep your eyes on the road ahead.",
		"Nobody said it would be simple.",
		"That's all for today, thank you.",
	}
	var target, ref []subtitle.Line
	for i, text := range texts {
		start := 10000 + i*30000
		target = append(target, subtitle.Line{Start: start, End: start + 2000, Text: text})
		ref = append(ref, subtitle.Line{Start: scale(start), End: scale(start + 2000), Text: text})
	}

	res, err := AutoSync(target, ref, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Slope != 1.25 {
		t.Errorf("slope = %v, want 1.25", res.Slope)
	}
	for i := range target {
		want := scale(10000 + i*30000)
		if target[i].Start != want {
			t.Errorf("line %d start = %d, want %d", i, target[i].Start, want)
		}
	}
}

func TestAutoSyncFailsWithoutReliablePoints(t *testing.T) {
	target := []subtitle.Line{{Start: 0, End: 1000, Text: "Alpha bravo charlie delta."}}
	ref := []subtitle.Line{{Start: 0, End: 1000, Text: "Echo foxtrot golf hotel."}}
	if _, err := AutoSync(target, ref, nil); !errors.Is(err, ErrNoSyncPoints) {
		t.Fatalf("err = %v, want ErrNoSyncPoints", err)
	}
}
