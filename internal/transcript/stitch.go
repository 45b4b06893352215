package transcript

import (
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Boundary stitching thresholds.
const (
	stitchTimeGapLimit = 2.0  // seconds; beyond this, neighbors are unrelated
	stitchMaxOverlap   = 10   // words compared for prefix/suffix overlap
	fuzzyDupThreshold  = 0.88 // similarity ratio treated as a duplicate
	trailingEchoRatio  = 0.85 // similarity against the tail of the previous line
)

// Dedupe window bounds around a spliced block.
const (
	dedupeLookback = 8   // segments scanned backwards
	dedupeMaxTime  = 8.0 // seconds scanned backwards
)

// stitchAction says what to do with the current segment of a pair.
type stitchAction int

const (
	// stitchKeep keeps the current segment, possibly with trimmed text.
	stitchKeep stitchAction = iota
	// stitchDropCurr discards the current segment as redundant.
	stitchDropCurr
	// stitchAbsorbPrev keeps the current segment and discards the
	// previous one, which the current segment fully restates.
	stitchAbsorbPrev
)

type stitchResult struct {
	action stitchAction
	seg    Segment
}

var stripApostropheWordRe = regexp.MustCompile(`[^\w']+`)

// similarityRatio is a character-level similarity in [0, 1].
func similarityRatio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

func isFuzzyDuplicate(prevText, currText string, threshold float64) bool {
	a := normalizeForDedupe(prevText)
	b := normalizeForDedupe(currText)
	if a == "" || b == "" {
		return false
	}
	return similarityRatio(a, b) >= threshold
}

// overlapWords returns the longest n (2..maxN) for which the last n word
// tokens of prevText equal the first n of currText.
func overlapWords(prevText, currText string, maxN int) int {
	a := overlapTokens(prevText)
	b := overlapTokens(currText)
	limit := min(maxN, len(a), len(b))
	for n := limit; n >= 2; n-- {
		match := true
		for i := 0; i < n; i++ {
			if a[len(a)-n+i] != b[i] {
				match = false
				break
			}
		}
		if match {
			return n
		}
	}
	return 0
}

// trimPrefixWords removes the first n word tokens from text, counting only
// tokens that survive normalization so stray punctuation does not skew the
// cut point.
func trimPrefixWords(text string, n int) string {
	if n <= 0 {
		return strings.TrimSpace(text)
	}
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return ""
	}
	removed := 0
	cut := 0
	for i, p := range parts {
		cut = i + 1
		if stripApostropheWordRe.ReplaceAllString(strings.ToLower(p), "") != "" {
			removed++
			if removed >= n {
				break
			}
		}
	}
	return strings.TrimSpace(strings.Join(parts[cut:], " "))
}

// stitchPair decides how the current segment relates to its predecessor:
// an outright duplicate is dropped, a segment that restates and extends its
// predecessor absorbs it, and a partial word overlap is trimmed off the
// current text. Word-level splicing is skipped when neither side came from
// the repair loop, so trusted dialogue is never rewritten.
func stitchPair(prev, curr Segment) stitchResult {
	gap := curr.Start - prev.End
	prevRaw := strings.TrimSpace(prev.Text)
	currRaw := strings.TrimSpace(curr.Text)
	if currRaw == "" {
		return stitchResult{action: stitchDropCurr}
	}

	prevNorm := normalizeForDedupe(prevRaw)
	currNorm := normalizeForDedupe(currRaw)

	if gap < stitchTimeGapLimit && isFuzzyDuplicate(prevRaw, currRaw, fuzzyDupThreshold) {
		return stitchResult{action: stitchDropCurr}
	}

	// Trailing echo: the current line is a stutter of the previous line's
	// tail, e.g. "...the park" followed by "the park's".
	if gap < stitchTimeGapLimit && len(currNorm) >= 15 && len(prevNorm) >= len(currNorm) {
		tail := prevNorm[max(0, len(prevNorm)-len(currNorm)-5):]
		if similarityRatio(currNorm, tail) >= trailingEchoRatio {
			return stitchResult{action: stitchDropCurr}
		}
	}

	if prev.Provenance != ProvenanceRepaired && curr.Provenance != ProvenanceRepaired {
		return stitchResult{action: stitchKeep, seg: curr}
	}

	prevTok := overlapTokens(prevRaw)
	currTok := overlapTokens(currRaw)

	if gap < stitchTimeGapLimit && len(prevTok) >= 3 && len(currTok) >= len(prevTok) {
		prefix := true
		for i := range prevTok {
			if currTok[i] != prevTok[i] {
				prefix = false
				break
			}
		}
		if prefix {
			return stitchResult{action: stitchAbsorbPrev, seg: curr}
		}
	}

	if gap < stitchTimeGapLimit && len(prevNorm) >= 10 &&
		strings.Contains(currNorm, prevNorm) && len(currNorm) > len(prevNorm)+10 {
		return stitchResult{action: stitchAbsorbPrev, seg: curr}
	}

	if n := overlapWords(prevRaw, currRaw, stitchMaxOverlap); n > 0 {
		trimmed := CleanText(trimPrefixWords(currRaw, n))
		if trimmed == "" {
			return stitchResult{action: stitchDropCurr}
		}
		curr.Text = trimmed
		return stitchResult{action: stitchKeep, seg: curr}
	}

	return stitchResult{action: stitchKeep, seg: curr}
}

func removeAt(segs []Segment, i int) []Segment {
	out := make([]Segment, 0, len(segs)-1)
	out = append(out, segs[:i]...)
	out = append(out, segs[i+1:]...)
	return out
}

// StitchBoundaries re-examines the two seams left by splicing a block into
// segs at [insertStart, insertEnd]. Returns the adjusted slice and the
// adjusted end index of the block.
func StitchBoundaries(segs []Segment, insertStart, insertEnd int) ([]Segment, int) {
	if left := insertStart - 1; left >= 0 && insertStart < len(segs) {
		switch res := stitchPair(segs[left], segs[insertStart]); res.action {
		case stitchDropCurr:
			segs = removeAt(segs, insertStart)
			insertEnd--
		case stitchAbsorbPrev:
			segs[insertStart] = res.seg
			segs = removeAt(segs, left)
			insertEnd--
		default:
			segs[insertStart] = res.seg
		}
	}

	if next := insertEnd + 1; insertEnd >= 0 && next < len(segs) {
		switch res := stitchPair(segs[insertEnd], segs[next]); res.action {
		case stitchDropCurr:
			segs = removeAt(segs, next)
		case stitchAbsorbPrev:
			segs[next] = res.seg
			segs = removeAt(segs, insertEnd)
			insertEnd--
		default:
			segs[next] = res.seg
		}
	}
	return segs, insertEnd
}

// DedupeWindow rescans the neighborhood of a spliced block and removes
// repetitions the recognizer produced across zone boundaries. Segments up
// to dedupeLookback positions or dedupeMaxTime seconds back are compared.
func DedupeWindow(segs []Segment, i0, i1 int) []Segment {
	if len(segs) == 0 {
		return segs
	}
	startIdx := max(0, i0-dedupeLookback)
	endIdx := min(len(segs)-1, i1+dedupeLookback)

	out := make([]Segment, 0, len(segs))
	out = append(out, segs[:startIdx]...)

	for _, seg := range segs[startIdx : endIdx+1] {
		if normalizeForDedupe(seg.Text) == "" {
			continue
		}
		keep := true
		replacedPrev := false

		for j := len(out) - 1; j >= 0 && j >= len(out)-dedupeLookback; j-- {
			prev := out[j]
			if seg.Start-prev.End > dedupeMaxTime {
				break
			}
			immediate := j == len(out)-1

			switch res := stitchPair(prev, seg); res.action {
			case stitchDropCurr:
				if immediate {
					keep = false
				}
			case stitchAbsorbPrev:
				if immediate {
					merged := res.seg
					merged.Start = min(merged.Start, prev.Start)
					out[j] = merged
					keep = false
					replacedPrev = true
				}
			default:
				if immediate {
					seg = res.seg
				}
			}
			if !keep {
				break
			}
			if immediate && isFuzzyDuplicate(prev.Text, seg.Text, fuzzyDupThreshold) {
				keep = false
				break
			}
		}

		if replacedPrev {
			continue
		}
		if keep {
			out = append(out, seg)
		}
	}

	out = append(out, segs[endIdx+1:]...)
	return out
}

// CleanupRedundancies makes a final adjacent-pair pass over the whole list.
func CleanupRedundancies(segs []Segment) []Segment {
	var cleaned []Segment
	for _, seg := range segs {
		if len(cleaned) == 0 {
			cleaned = append(cleaned, seg)
			continue
		}
		switch res := stitchPair(cleaned[len(cleaned)-1], seg); res.action {
		case stitchDropCurr:
		case stitchAbsorbPrev:
			cleaned[len(cleaned)-1] = res.seg
		default:
			cleaned = append(cleaned, res.seg)
		}
	}
	return cleaned
}
