package subtitle

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	assTagRe   = regexp.MustCompile(`\{.*?\}`)
	htmlTagRe  = regexp.MustCompile(`<.*?>`)
	bracketsRe = regexp.MustCompile(`\[.*?\]|\(.*?\)`)
)

// StripMarkup removes ASS override tags, HTML-style tags, and hard line
// break escapes from subtitle text, leaving plain dialogue.
func StripMarkup(text string) string {
	t := assTagRe.ReplaceAllString(text, "")
	t = htmlTagRe.ReplaceAllString(t, "")
	t = strings.ReplaceAll(t, `\N`, " ")
	t = strings.ReplaceAll(t, "\n", " ")
	return strings.TrimSpace(t)
}

// NormalizeForMatch reduces text to lowercase words for token comparison:
// markup and bracketed annotations are stripped, the text is NFC
// normalized, punctuation is removed, and whitespace is collapsed. The
// result may be empty for music or effects lines.
func NormalizeForMatch(text string) string {
	t := StripMarkup(text)
	t = bracketsRe.ReplaceAllString(t, "")
	t = norm.NFC.String(t)
	t = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, t)
	return strings.Join(strings.Fields(t), " ")
}

// Words returns the normalized word tokens of text.
func Words(text string) []string {
	return strings.Fields(NormalizeForMatch(text))
}
