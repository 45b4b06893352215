package transcript

import (
	"math"
	"strings"
	"unicode"
)

// Detection thresholds.
const (
	// SuspiciousDuration is the duration above which an unpunctuated
	// segment is treated as a probable decoder hang.
	SuspiciousDuration = 6.0
	// SuspiciousLength is the character count above which an unpunctuated
	// segment is treated as a run-on.
	SuspiciousLength = 60
)

// segmentStats are the derived features the detection and scoring rules
// share. Durations are clamped away from zero before division.
type segmentStats struct {
	text     string
	duration float64
	words    []string
	endPunct int     // count of . ? !
	charLen  int     // characters excluding whitespace
	cps      float64 // characters per second
	wps      float64 // words per second
}

func statsFor(seg Segment) segmentStats {
	text := strings.TrimSpace(seg.Text)
	dur := math.Max(seg.Duration(), 0.001)
	words := textWords(text)
	return segmentStats{
		text:     text,
		duration: dur,
		words:    words,
		endPunct: strings.Count(text, ".") + strings.Count(text, "?") + strings.Count(text, "!"),
		charLen:  len(whitespaceRe.ReplaceAllString(text, "")),
		cps:      float64(len(text)) / dur,
		wps:      float64(len(words)) / dur,
	}
}

func (s segmentStats) avgWordLen() float64 {
	if len(s.words) == 0 {
		return 0
	}
	total := 0
	for _, w := range s.words {
		total += len(w)
	}
	return float64(total) / float64(len(s.words))
}

func (s segmentStats) shortWordRatio() float64 {
	if len(s.words) == 0 {
		return 0
	}
	short := 0
	for _, w := range s.words {
		if len(w) <= 3 {
			short++
		}
	}
	return float64(short) / float64(len(s.words))
}

func (s segmentStats) hasUpper() bool {
	return strings.IndexFunc(s.text, unicode.IsUpper) >= 0
}

func (s segmentStats) startsLower() bool {
	for _, r := range s.text {
		return unicode.IsLower(r)
	}
	return false
}

// mumbly reports the short-word low-density texture shared by the
// detector and the scorer.
func (s segmentStats) mumbly() bool {
	return len(s.words) >= 4 && len(s.words) <= 12 &&
		s.avgWordLen() <= 4.5 && s.cps <= 18.0
}

// isFlatDuration reports whether a duration sits suspiciously close to a
// whole second, the signature of decoder-invented timing.
func isFlatDuration(d float64) bool {
	return d >= 1.0 && math.Abs(d-math.Round(d)) <= 0.05
}

// suspicionRule flags one failure texture in recognizer output.
type suspicionRule struct {
	name  string
	match func(s segmentStats) bool
}

var suspicionRules = []suspicionRule{
	{
		name: "run_on",
		match: func(s segmentStats) bool {
			return len(s.words) >= 14 && s.endPunct == 0
		},
	},
	{
		name: "long_unpunctuated",
		match: func(s segmentStats) bool {
			return (s.duration > SuspiciousDuration || len(s.text) > SuspiciousLength) &&
				s.endPunct < 1
		},
	},
	{
		name: "lowercase_sprawl",
		match: func(s segmentStats) bool {
			return s.startsLower() && s.duration > 2.0 && s.endPunct == 0 &&
				(len(s.words) >= 10 || len(s.text) > 50 || s.cps > 24)
		},
	},
	{
		name: "fast_blast",
		match: func(s segmentStats) bool {
			return s.duration > 1.5 && s.cps > 35 && s.endPunct == 0
		},
	},
	{
		name: "mumble_run",
		match: func(s segmentStats) bool {
			return s.endPunct == 0 && s.duration >= 2.0 && s.duration <= 5.0 &&
				s.mumbly() && s.shortWordRatio() >= 0.5
		},
	},
	{
		name: "sparse_content",
		match: func(s segmentStats) bool {
			return s.duration >= 5.5 && (len(s.words) <= 6 || s.charLen <= 22)
		},
	},
	{
		name: "dragging",
		match: func(s segmentStats) bool {
			return s.duration >= 7.0 && s.wps < 1.0
		},
	},
	{
		name: "slow_sparse",
		match: func(s segmentStats) bool {
			return s.duration >= 4.5 && s.wps <= 0.9 && s.cps <= 6.0
		},
	},
}

// Suspicious reports whether segments[index] looks like recognizer failure.
// Most rules inspect the segment alone; the flat-duration rule also needs a
// neighbor with equally flat timing, so the whole list is passed in.
func Suspicious(segments []Segment, index int) bool {
	_, ok := suspicionReason(segments, index)
	return ok
}

// suspicionReason returns the name of the first matching rule.
func suspicionReason(segments []Segment, index int) (string, bool) {
	seg := segments[index]
	stats := statsFor(seg)

	for _, rule := range suspicionRules {
		if rule.match(stats) {
			return rule.name, true
		}
	}

	// Flat durations only matter in pairs. A single whole-second segment
	// is coincidence; two in a row is the decoder painting by numbers.
	if isFlatDuration(stats.duration) {
		if index > 0 && isFlatDuration(segments[index-1].Duration()) {
			return "flat_duration", true
		}
		if index < len(segments)-1 && isFlatDuration(segments[index+1].Duration()) {
			return "flat_duration", true
		}
	}

	return "", false
}

// SuspiciousIndices returns the indices of every suspicious segment in order.
func SuspiciousIndices(segments []Segment) []int {
	var out []int
	for i := range segments {
		if Suspicious(segments, i) {
			out = append(out, i)
		}
	}
	return out
}
