package subtitle

import (
	"path/filepath"
	"strings"
	"testing"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:02,500
Hello there.

2
00:00:03,000 --> 00:00:04,000
- General Kenobi!
- You are a bold one.

3
bogus timing line
skipped block
`

func TestParseSRT(t *testing.T) {
	lines := ParseSRT([]byte(sampleSRT))
	if len(lines) != 2 {
		t.Fatalf("parsed %d lines, want 2", len(lines))
	}
	if lines[0].Start != 1000 || lines[0].End != 2500 {
		t.Errorf("line 0 times = %d..%d, want 1000..2500", lines[0].Start, lines[0].End)
	}
	if lines[0].Text != "Hello there." {
		t.Errorf("line 0 text = %q", lines[0].Text)
	}
	if want := "- General Kenobi!\n- You are a bold one."; lines[1].Text != want {
		t.Errorf("line 1 text = %q, want %q", lines[1].Text, want)
	}
}

func TestParseSRTAcceptsPeriodMillis(t *testing.T) {
	lines := ParseSRT([]byte("1\n00:00:01.250 --> 00:00:02.000\nHi\n"))
	if len(lines) != 1 {
		t.Fatalf("parsed %d lines, want 1", len(lines))
	}
	if lines[0].Start != 1250 {
		t.Errorf("start = %d, want 1250", lines[0].Start)
	}
}

func TestFormatSRTRoundTrip(t *testing.T) {
	in := []Line{
		{Index: 7, Start: 61005, End: 63500, Text: "First."},
		{Index: 8, Start: 3600000, End: 3601000, Text: "One hour in."},
		{Index: 9, Start: 0, End: 500, Text: "skipped", Comment: true},
	}
	out := ParseSRT(FormatSRT(in))
	if len(out) != 2 {
		t.Fatalf("round-tripped %d lines, want 2", len(out))
	}
	// Indices renumber from 1 on write.
	if out[0].Index != 1 || out[1].Index != 2 {
		t.Errorf("indices = %d, %d, want 1, 2", out[0].Index, out[1].Index)
	}
	if out[0].Start != 61005 || out[0].End != 63500 {
		t.Errorf("times = %d..%d", out[0].Start, out[0].End)
	}
	if !strings.Contains(string(FormatSRT(in)), "01:00:00,000") {
		t.Error("hour timestamp not formatted")
	}
}

func TestLoadSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.srt")
	lines := []Line{{Index: 1, Start: 100, End: 900, Text: "Saved."}}
	if err := SaveFile(path, lines); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Text != "Saved." {
		t.Errorf("got %+v", got)
	}
}
