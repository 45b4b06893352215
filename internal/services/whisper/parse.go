package whisper

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"anchor/internal/transcript"
)

type wordPayload struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type segmentPayload struct {
	Start        float64       `json:"start"`
	End          float64       `json:"end"`
	Text         string        `json:"text"`
	Words        []wordPayload `json:"words"`
	NoSpeechProb *float64      `json:"no_speech_prob"`
	AvgLogProb   *float64      `json:"avg_logprob"`
}

type resultPayload struct {
	Segments []segmentPayload `json:"segments"`
}

// LoadSegments reads a recognizer JSON file into transcript segments.
func LoadSegments(path string) ([]transcript.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recognizer output: %w", err)
	}
	return ParseSegments(data)
}

// ParseSegments decodes recognizer JSON into transcript segments. Word
// texts keep their leading-space convention trimmed.
func ParseSegments(data []byte) ([]transcript.Segment, error) {
	var payload resultPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse recognizer json: %w", err)
	}

	segs := make([]transcript.Segment, 0, len(payload.Segments))
	for _, p := range payload.Segments {
		seg := transcript.Segment{
			Start:        p.Start,
			End:          p.End,
			Text:         strings.TrimSpace(p.Text),
			NoSpeechProb: p.NoSpeechProb,
			AvgLogProb:   p.AvgLogProb,
			Provenance:   transcript.ProvenanceRecognized,
		}
		for _, w := range p.Words {
			seg.Words = append(seg.Words, transcript.Word{
				Text:  strings.TrimSpace(w.Word),
				Start: w.Start,
				End:   w.End,
			})
		}
		segs = append(segs, seg)
	}
	return segs, nil
}
