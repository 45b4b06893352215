package align

import (
	"sort"

	"anchor/internal/subtitle"
)

// reconstruct assigns a new start time to every line, anchored or not:
// lines before the first anchor and after the last receive that anchor's
// constant shift, lines in between interpolate linearly from the bracketing
// anchors' (original, final) start pairs. Durations are preserved and
// times are floored at zero. Anchors must be non-empty.
func reconstruct(lines []subtitle.Line, anchors []anchor) {
	xs := make([]float64, len(anchors))
	ys := make([]float64, len(anchors))
	for i, a := range anchors {
		xs[i] = a.origStart
		ys[i] = a.finalStart
	}

	first := anchors[0]
	last := anchors[len(anchors)-1]

	for i := range lines {
		orig := lines[i].StartSeconds()
		duration := lines[i].Duration()

		var newStart float64
		switch {
		case i < first.linePos:
			newStart = orig + (first.finalStart - first.origStart)
		case i > last.linePos:
			newStart = orig + (last.finalStart - last.origStart)
		default:
			newStart = interpolate(xs, ys, orig)
		}

		if newStart < 0 {
			newStart = 0
		}
		lines[i].Start = int(newStart * 1000)
		lines[i].End = lines[i].Start + duration
		if lines[i].End < 0 {
			lines[i].End = 0
		}
	}
}

// interpolate evaluates the piecewise-linear function through (xs, ys) at
// x, clamping to the endpoints outside the range. xs must be ascending.
func interpolate(xs, ys []float64, x float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	n := len(xs)
	if x >= xs[n-1] {
		return ys[n-1]
	}
	j := sort.SearchFloat64s(xs, x)
	if xs[j] == x {
		return ys[j]
	}
	x0, x1 := xs[j-1], xs[j]
	y0, y1 := ys[j-1], ys[j]
	if x1 == x0 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
