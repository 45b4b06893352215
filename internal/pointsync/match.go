package pointsync

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// minMatchScore rejects line pairs below 85% similarity.
	minMatchScore = 0.85
	// maxLengthDelta skips pairs whose lengths differ too much to bother
	// computing a ratio for.
	maxLengthDelta = 10
	// sectionLimit is how many lines from each file edge are considered.
	sectionLimit = 100
)

// MatchPoint is a locked sync point: the same line's start time in both
// files. Text carries the reference side's rendering.
type MatchPoint struct {
	TargetMillis int
	RefMillis    int
	Text         string
	Score        float64
}

// FindBestMatch scans every target/reference line pair and returns the
// most similar one above the score threshold. With reverse set, target
// lines are scanned bottom-up so equal scores resolve to the latest line,
// which is what the end sync point wants.
func FindBestMatch(target, ref []LineRef, reverse bool) (MatchPoint, bool) {
	var best MatchPoint

	consider := func(t LineRef) {
		for _, r := range ref {
			delta := len(t.Text) - len(r.Text)
			if delta > maxLengthDelta || delta < -maxLengthDelta {
				continue
			}
			ratio := similarity(t.Text, r.Text)
			if ratio > best.Score {
				best = MatchPoint{
					TargetMillis: t.StartMillis,
					RefMillis:    r.StartMillis,
					Text:         r.Text,
					Score:        ratio,
				}
			}
		}
	}

	if reverse {
		for i := len(target) - 1; i >= 0; i-- {
			consider(target[i])
		}
	} else {
		for _, t := range target {
			consider(t)
		}
	}

	if best.Score < minMatchScore {
		return MatchPoint{}, false
	}
	return best, true
}

func similarity(a, b string) float64 {
	return difflib.NewMatcher(
		strings.Split(strings.ToLower(a), ""),
		strings.Split(strings.ToLower(b), ""),
	).Ratio()
}
