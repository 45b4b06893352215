// Package pointsync performs two-point linear correction against a
// reference subtitle: it locks one sync point near the start and one near
// the end, then maps every timestamp through the resulting line.
package pointsync

import (
	"errors"
	"strings"

	"anchor/internal/subtitle"
)

// ErrDegenerateInterval means both sync points landed on the same target
// time, so no line can be fitted.
var ErrDegenerateInterval = errors.New("pointsync: start and end sync points are identical on the target")

// ErrNoSyncPoints means no line pair matched reliably enough.
var ErrNoSyncPoints = errors.New("pointsync: no reliable sync points found")

// Section selects which part of a file to draw candidate lines from.
type Section string

const (
	SectionAll   Section = "all"
	SectionStart Section = "start"
	SectionEnd   Section = "end"
)

// LineRef is a candidate sync line: its position in the file, its start
// time, and its markup-free text.
type LineRef struct {
	Index       int
	StartMillis int
	Text        string
}

// FilteredLines extracts usable sync candidates: comments, music cues,
// bracketed effects, and very short lines make poor anchors and are
// skipped. For SectionStart and SectionEnd at most limit lines from the
// respective edge are returned.
func FilteredLines(lines []subtitle.Line, section Section, limit int) []LineRef {
	var out []LineRef
	for i, line := range lines {
		if line.Comment {
			continue
		}
		text := subtitle.StripMarkup(line.Text)
		if len(text) < 3 {
			continue
		}
		if strings.HasPrefix(text, "♪") || strings.HasPrefix(text, "[") {
			continue
		}
		out = append(out, LineRef{Index: i, StartMillis: line.Start, Text: text})
	}

	switch section {
	case SectionStart:
		if len(out) > limit {
			out = out[:limit]
		}
	case SectionEnd:
		if len(out) > limit {
			out = out[len(out)-limit:]
		}
	}
	return out
}

// ApplyLinearCorrection fits t' = m*t + c through the two point pairs and
// maps every line's start and end through it, in place.
func ApplyLinearCorrection(lines []subtitle.Line, p1Target, p1Ref, p2Target, p2Ref int) (m, c float64, err error) {
	if p2Target == p1Target {
		return 0, 0, ErrDegenerateInterval
	}

	m = float64(p2Ref-p1Ref) / float64(p2Target-p1Target)
	c = float64(p1Ref) - m*float64(p1Target)

	for i := range lines {
		lines[i].Start = int(m*float64(lines[i].Start) + c)
		lines[i].End = int(m*float64(lines[i].End) + c)
	}
	return m, c, nil
}
