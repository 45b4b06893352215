package transcript

// Confidence gates for raw recognizer output. Segments the model itself
// doubts are usually music or silence hallucinated into words.
const (
	// MaxNoSpeechProb drops segments the model thinks are probably not speech.
	MaxNoSpeechProb = 0.6
	// MinAvgLogProb drops segments decoded with very low token confidence.
	MinAvgLogProb = -1.0
)

// FilterLowConfidence removes segments whose recognizer confidence signals
// fall outside the gates. Segments without confidence data pass through.
func FilterLowConfidence(segs []Segment, maxNoSpeech, minAvgLogProb float64) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s.NoSpeechProb != nil && *s.NoSpeechProb >= maxNoSpeech {
			continue
		}
		if s.AvgLogProb != nil && *s.AvgLogProb <= minAvgLogProb {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SnapToWords tightens each segment's boundaries to its first and last
// word timestamps when word timings are present. Segments without word
// timings keep their original bounds.
func SnapToWords(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if len(s.Words) > 0 {
			s.Start = s.Words[0].Start
			s.End = s.Words[len(s.Words)-1].End
		}
		out = append(out, s)
	}
	return out
}
