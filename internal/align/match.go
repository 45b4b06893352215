package align

import (
	"github.com/pmezard/go-difflib/difflib"

	"anchor/internal/subtitle"
)

// candidate is a line with at least one matched reference token, before
// outlier filtering.
type candidate struct {
	linePos      int
	origStart    float64
	rawMatchTime float64
	drift        float64
}

// matchCandidates finds the longest common token runs between the subtitle
// and reference streams and builds one candidate per matched line. Junk
// heuristics are disabled: frequent words (articles, pronouns) are exactly
// the anchors dialogue provides.
//
// Only the first matched token per line contributes its timestamp
// (earliest-first policy; deterministic, favors the start of the line).
func matchCandidates(lines []subtitle.Line, ref []RefSegment) []candidate {
	subTokens := tokenizeLines(lines)
	refTokens := tokenizeReference(ref)
	if len(subTokens) == 0 || len(refTokens) == 0 {
		return nil
	}

	a := make([]string, len(subTokens))
	for i, tok := range subTokens {
		a[i] = tok.word
	}
	b := make([]string, len(refTokens))
	for i, tok := range refTokens {
		b[i] = tok.word
	}

	matcher := difflib.NewMatcherWithJunk(a, b, false, nil)

	firstMatch := make(map[int]float64, len(lines))
	for _, block := range matcher.GetMatchingBlocks() {
		for i := 0; i < block.Size; i++ {
			pos := subTokens[block.A+i].linePos
			if _, seen := firstMatch[pos]; !seen {
				firstMatch[pos] = refTokens[block.B+i].start
			}
		}
	}

	var candidates []candidate
	for pos, line := range lines {
		matchTime, ok := firstMatch[pos]
		if !ok {
			continue
		}
		orig := line.StartSeconds()
		candidates = append(candidates, candidate{
			linePos:      pos,
			origStart:    orig,
			rawMatchTime: matchTime,
			drift:        matchTime - orig,
		})
	}
	return candidates
}
