package transcript

import "anchor/internal/align"

// Provenance records where a segment's text came from. Stitching treats
// non-repaired segments as untouchable: word-level splicing only applies
// when at least one side of a pair came out of the repair loop.
type Provenance int

const (
	// ProvenanceNative marks text from an already-trusted source.
	ProvenanceNative Provenance = iota
	// ProvenanceRecognized marks raw recognizer output.
	ProvenanceRecognized
	// ProvenanceRepaired marks text substituted by the zone repair loop.
	ProvenanceRepaired
)

// Word is a recognized word with its own timing.
type Word struct {
	Text  string
	Start float64
	End   float64
}

// Segment is one recognized speech span. Times are seconds.
type Segment struct {
	Start        float64
	End          float64
	Text         string
	Words        []Word
	NoSpeechProb *float64
	AvgLogProb   *float64
	Provenance   Provenance
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// CloneSegments returns a copy of segs. Word slices are shared; every
// mutation in this package replaces rather than edits them.
func CloneSegments(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	copy(out, segs)
	return out
}

// RefSegments converts segments into the alignment engine's reference form.
func RefSegments(segs []Segment) []align.RefSegment {
	out := make([]align.RefSegment, 0, len(segs))
	for _, s := range segs {
		ref := align.RefSegment{Start: s.Start, End: s.End, Text: s.Text}
		for _, w := range s.Words {
			ref.Words = append(ref.Words, align.RefWord{Text: w.Text, Start: w.Start})
		}
		out = append(out, ref)
	}
	return out
}
