package align

import (
	"sort"

	"anchor/internal/subtitle"
)

// EnforceSpacing sorts lines by start time and resolves every overlap,
// guaranteeing at least gapMillis between consecutive lines and at least
// minDurationMillis per line. Overlaps are resolved by shrinking the
// earlier line's end; when that would push it under the duration floor, the
// earlier line is floored instead and the later line is pushed forward with
// its duration intact. No line is ever dropped. Returns the number of
// overlaps fixed.
func EnforceSpacing(lines []subtitle.Line, gapMillis, minDurationMillis int) int {
	if len(lines) == 0 {
		return 0
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Start < lines[j].Start
	})

	if lines[0].Duration() < minDurationMillis {
		lines[0].End = lines[0].Start + minDurationMillis
	}

	fixed := 0
	for i := 1; i < len(lines); i++ {
		prev := &lines[i-1]
		curr := &lines[i]

		requiredStart := prev.End + gapMillis
		if requiredStart > curr.Start {
			newPrevEnd := curr.Start - gapMillis
			if newPrevEnd-prev.Start < minDurationMillis {
				prev.End = prev.Start + minDurationMillis
				duration := curr.Duration()
				curr.Start = prev.End + gapMillis
				curr.End = curr.Start + duration
			} else {
				prev.End = newPrevEnd
			}
			fixed++
		}

		if curr.Duration() < minDurationMillis {
			curr.End = curr.Start + minDurationMillis
		}
	}
	return fixed
}
