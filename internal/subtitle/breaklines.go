package subtitle

import "strings"

// MaxLineWidth is the column limit used when breaking long dialogue into
// two display lines.
const MaxLineWidth = 42

// BreakLines splits text into two roughly balanced lines when it exceeds
// MaxLineWidth. Text at or under the limit, or consisting of a single long
// word, is returned unchanged.
func BreakLines(text string) string {
	if len(text) <= MaxLineWidth {
		return text
	}

	words := strings.Fields(text)
	if len(words) <= 1 {
		return text
	}

	total := len(text)
	bestSplit := -1
	bestDiff := total + 1
	current := 0

	// Pick the word boundary that minimizes the length difference between
	// the two halves.
	for i := 0; i < len(words)-1; i++ {
		current += len(words[i])
		lenFirst := current + i
		lenSecond := total - lenFirst - 1
		diff := lenFirst - lenSecond
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			bestSplit = i
		}
	}

	return strings.Join(words[:bestSplit+1], " ") + "\n" + strings.Join(words[bestSplit+1:], " ")
}
