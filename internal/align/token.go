package align

import (
	"anchor/internal/subtitle"
)

// RefWord is a reference word with a known start time.
type RefWord struct {
	Text  string
	Start float64
}

// RefSegment is a span of reference timing: either another subtitle's cue
// or a recognized speech segment. Word-level timings are used when present;
// otherwise the segment duration is subdivided evenly across its words.
type RefSegment struct {
	Start float64
	End   float64
	Text  string
	Words []RefWord
}

// lineToken tags a normalized word with the position of its owning line.
type lineToken struct {
	word    string
	linePos int
}

// timedToken tags a normalized word with its reference timestamp.
type timedToken struct {
	word  string
	start float64
}

// tokenizeLines flattens subtitle lines into normalized word tokens. Lines
// that normalize to nothing contribute no tokens and can never anchor.
func tokenizeLines(lines []subtitle.Line) []lineToken {
	var tokens []lineToken
	for pos, line := range lines {
		for _, word := range subtitle.Words(line.Text) {
			tokens = append(tokens, lineToken{word: word, linePos: pos})
		}
	}
	return tokens
}

// tokenizeReference flattens reference segments into timestamped word
// tokens.
func tokenizeReference(segments []RefSegment) []timedToken {
	var tokens []timedToken
	for _, seg := range segments {
		if len(seg.Words) > 0 {
			for _, w := range seg.Words {
				word := subtitle.NormalizeForMatch(w.Text)
				if word == "" {
					continue
				}
				tokens = append(tokens, timedToken{word: word, start: w.Start})
			}
			continue
		}

		words := subtitle.Words(seg.Text)
		if len(words) == 0 {
			continue
		}
		step := (seg.End - seg.Start) / float64(len(words))
		for i, word := range words {
			tokens = append(tokens, timedToken{word: word, start: seg.Start + float64(i)*step})
		}
	}
	return tokens
}
