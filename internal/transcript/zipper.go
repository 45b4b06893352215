package transcript

import "sort"

// Spacing defaults for recognized timelines, in seconds.
const (
	MinGap      = 0.05
	MinDuration = 0.5
	MaxDuration = 7.0
)

// EnforceSpacing cleans, sorts, and de-overlaps segments. Overlaps shrink
// the earlier segment's end; when that would push it under minDur the
// earlier segment is floored and the later one pushed forward. Segments
// longer than maxDur are clamped by moving their start toward the end,
// never into the previous segment. Segments whose text cleans to empty are
// dropped; nothing else is.
func EnforceSpacing(segs []Segment, gap, minDur, maxDur float64) []Segment {
	cleaned := CleanSegments(segs)
	if len(cleaned) == 0 {
		return nil
	}
	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].Start < cleaned[j].Start
	})

	out := []Segment{cleaned[0]}
	for _, curr := range cleaned[1:] {
		prev := &out[len(out)-1]

		if required := prev.End + gap; required > curr.Start {
			newPrevEnd := curr.Start - gap
			if newPrevEnd-prev.Start < minDur {
				prev.End = prev.Start + minDur
				curr.Start = prev.End + gap
				if curr.End < curr.Start+minDur {
					curr.End = curr.Start + minDur
				}
			} else {
				prev.End = newPrevEnd
			}
		}

		if curr.Duration() > maxDur {
			newStart := curr.End - maxDur
			if floor := prev.End + gap; newStart < floor {
				newStart = floor
			}
			curr.Start = newStart
			if curr.End < curr.Start+minDur {
				curr.End = curr.Start + minDur
			}
		}

		out = append(out, curr)
	}
	return out
}
