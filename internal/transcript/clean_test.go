package transcript

import "testing"

func TestCleanText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"collapse whitespace", "  Hello   world  ", "Hello world"},
		{"strip brackets", "[music] Hello there", "Hello there"},
		{"strip parens", "(laughs) Hello there", "Hello there"},
		{"punctuation only", "?!.", ""},
		{"leading ellipsis", "...and so it begins.", "and so it begins."},
		{"space before punct", "Hello ,world", "Hello, world"},
		{"missing space after period", "Wait.What", "Wait. What"},
		{"doubled quote", "It''s fine.", "It's fine."},
		{"chevrons", ">> Hello there.", "Hello there."},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanText(tc.in); got != tc.want {
				t.Errorf("CleanText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanTextSuppressesShortHallucinations(t *testing.T) {
	if got := CleanText("Thanks for watching!"); got != "" {
		t.Errorf("stock hallucination kept: %q", got)
	}
	// A real line that merely contains the phrase is long enough to keep.
	long := "He said thanks for watching the whole game tonight"
	if got := CleanText(long); got == "" {
		t.Error("long line containing the phrase was suppressed")
	}
}

func TestCleanSegmentsDropsEmptied(t *testing.T) {
	segs := []Segment{
		{Start: 0, End: 2, Text: "Hello there."},
		{Start: 2, End: 4, Text: "..."},
		{Start: 4, End: 6, Text: "[applause]"},
	}
	out := CleanSegments(segs)
	if len(out) != 1 || out[0].Text != "Hello there." {
		t.Errorf("CleanSegments = %+v, want only the real line", out)
	}
}

func TestNormalizeForDedupe(t *testing.T) {
	if got := normalizeForDedupe("Hello, World!"); got != "hello world" {
		t.Errorf("got %q, want %q", got, "hello world")
	}
}

func TestFilterLowConfidence(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	segs := []Segment{
		{Text: "kept, no probe data"},
		{Text: "dropped, probably silence", NoSpeechProb: f(0.9)},
		{Text: "dropped, low confidence", AvgLogProb: f(-1.5)},
		{Text: "kept, confident", NoSpeechProb: f(0.1), AvgLogProb: f(-0.2)},
	}
	out := FilterLowConfidence(segs, MaxNoSpeechProb, MinAvgLogProb)
	if len(out) != 2 {
		t.Fatalf("kept %d segments, want 2", len(out))
	}
	if out[0].Text != segs[0].Text || out[1].Text != segs[3].Text {
		t.Errorf("wrong segments kept: %+v", out)
	}
}

func TestSnapToWords(t *testing.T) {
	segs := []Segment{
		{Start: 0, End: 5, Text: "padded by the decoder", Words: []Word{
			{Text: "padded", Start: 0.8, End: 1.2},
			{Text: "decoder", Start: 3.1, End: 3.6},
		}},
		{Start: 6, End: 8, Text: "no word timings"},
	}
	out := SnapToWords(segs)
	if out[0].Start != 0.8 || out[0].End != 3.6 {
		t.Errorf("snapped bounds = %v..%v, want 0.8..3.6", out[0].Start, out[0].End)
	}
	if out[1].Start != 6 || out[1].End != 8 {
		t.Errorf("segment without words must keep its bounds: %+v", out[1])
	}
}
