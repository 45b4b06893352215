package transcript

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	leadingEllipsisRe   = regexp.MustCompile(`^\.\.\.`)
	whitespaceRe        = regexp.MustCompile(`\s+`)
	squareBracketsRe    = regexp.MustCompile(`\[.*?\]`)
	roundBracketsRe     = regexp.MustCompile(`\(.*?\)`)
	punctOnlyRe         = regexp.MustCompile(`^[.,?!;:\s]+$`)
	spaceBeforePunctRe  = regexp.MustCompile(`\s+([?!.,])`)
	punctNoSpaceRe      = regexp.MustCompile(`([?!,])(\S)`)
	periodNoSpaceRe     = regexp.MustCompile(`\.([^\s.])`)
	openParenSpacingRe  = regexp.MustCompile(`\s*\(\s*`)
	openBrackSpacingRe  = regexp.MustCompile(`\s*\[\s*`)
	spaceBeforeCloserRe = regexp.MustCompile(`\s+([.,!?;:])`)

	nonWordRe      = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	wordRe         = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	overlapTokenRe = regexp.MustCompile(`[A-Za-z0-9']+`)
)

// Stock recognizer hallucinations. Only suppressed when the whole segment
// is short, so a real line quoting one of these survives.
var hallucinationPhrases = []string{
	"thank you for watching",
	"thanks for watching",
	"don't forget to subscribe",
	"please subscribe",
	"subtitles by",
	"captioned by",
}

// CleanText normalizes recognizer text: Unicode NFC, dash and chevron
// artifacts, whitespace, bracketed asides, punctuation spacing. Returns ""
// when nothing meaningful remains or the text is a known hallucination.
func CleanText(t string) string {
	if t == "" {
		return ""
	}
	t = norm.NFC.String(t)

	t = strings.ReplaceAll(t, "–", "-")
	t = strings.ReplaceAll(t, "—", "-")
	t = strings.ReplaceAll(t, ">>", "")
	t = strings.ReplaceAll(t, "<<", "")
	t = leadingEllipsisRe.ReplaceAllString(t, "")

	t = whitespaceRe.ReplaceAllString(t, " ")
	t = squareBracketsRe.ReplaceAllString(t, "")
	t = roundBracketsRe.ReplaceAllString(t, "")

	if punctOnlyRe.MatchString(t) {
		return ""
	}

	t = spaceBeforePunctRe.ReplaceAllString(t, "$1")
	t = punctNoSpaceRe.ReplaceAllString(t, "$1 $2")
	t = periodNoSpaceRe.ReplaceAllString(t, ". $1")

	t = openParenSpacingRe.ReplaceAllString(t, " (")
	t = openBrackSpacingRe.ReplaceAllString(t, " [")
	t = strings.ReplaceAll(t, "''", "'")

	t = spaceBeforeCloserRe.ReplaceAllString(t, "$1")

	lower := strings.TrimSpace(strings.ToLower(t))
	lower = strings.ReplaceAll(lower, ".", "")
	for _, h := range hallucinationPhrases {
		if strings.Contains(lower, h) && len(lower) < 30 {
			return ""
		}
	}

	return strings.TrimSpace(t)
}

// CleanSegments cleans every segment's text and drops the ones that end up
// empty. The input is not modified.
func CleanSegments(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		txt := CleanText(s.Text)
		if txt == "" {
			continue
		}
		s.Text = txt
		out = append(out, s)
	}
	return out
}

// normalizeForDedupe strips punctuation and case so near-identical
// repetitions compare equal.
func normalizeForDedupe(text string) string {
	return strings.TrimSpace(strings.ToLower(nonWordRe.ReplaceAllString(text, "")))
}

// textWords splits text into word tokens for density heuristics.
func textWords(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// overlapTokens lowercases and tokenizes text for boundary overlap checks.
func overlapTokens(text string) []string {
	return overlapTokenRe.FindAllString(strings.ToLower(text), -1)
}
