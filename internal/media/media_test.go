package media

import (
	"slices"
	"testing"
)

func TestSpanArgs(t *testing.T) {
	args := spanArgs("movie.mkv", 12.3456, 9.0, false, "/tmp/out.wav")

	wantPairs := [][2]string{
		{"-ss", "12.346"},
		{"-t", "9.000"},
		{"-i", "movie.mkv"},
		{"-ac", "1"},
		{"-ar", "16000"},
		{"-c:a", "pcm_s16le"},
	}
	for _, pair := range wantPairs {
		i := slices.Index(args, pair[0])
		if i < 0 || i+1 >= len(args) || args[i+1] != pair[1] {
			t.Errorf("args missing %q %q: %v", pair[0], pair[1], args)
		}
	}
	if slices.Contains(args, "-af") {
		t.Error("denoise filter present without denoise enabled")
	}
	if args[len(args)-1] != "/tmp/out.wav" {
		t.Errorf("destination must be last arg, got %q", args[len(args)-1])
	}
}

func TestSpanArgsDenoise(t *testing.T) {
	args := spanArgs("movie.mkv", 0, 5, true, "out.wav")
	i := slices.Index(args, "-af")
	if i < 0 || args[i+1] != denoiseFilter {
		t.Errorf("denoise filter not wired: %v", args)
	}
}

func TestParseProbeDuration(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"5401.234000\n", 5401.234, false},
		{"0", 0, false},
		{"N/A\n", 0, true},
		{"", 0, true},
		{"-3", 0, true},
	}
	for _, tc := range cases {
		got, err := parseProbeDuration([]byte(tc.in))
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseProbeDuration(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseProbeDuration(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseProbeDuration(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
