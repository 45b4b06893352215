package subtitle

// Line is a single subtitle event. Times are integer milliseconds.
type Line struct {
	Index   int
	Start   int
	End     int
	Text    string
	Comment bool
}

// Duration returns the line duration in milliseconds.
func (l Line) Duration() int {
	return l.End - l.Start
}

// StartSeconds returns the start time in seconds.
func (l Line) StartSeconds() float64 {
	return float64(l.Start) / 1000.0
}

// EndSeconds returns the end time in seconds.
func (l Line) EndSeconds() float64 {
	return float64(l.End) / 1000.0
}

// CloneLines returns a deep copy of lines.
func CloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
