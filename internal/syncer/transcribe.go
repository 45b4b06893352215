package syncer

import (
	"context"
	"fmt"
	"math"

	"anchor/internal/subtitle"
	"anchor/internal/transcript"
)

// Transcribe recognizes the media file's speech from scratch and writes an
// SRT. Suspicious zones are re-recognized and repaired when repair is
// enabled. With outputPath empty the result lands next to the media file
// with an .ai.srt suffix.
func (s *Syncer) Transcribe(ctx context.Context, mediaPath, outputPath string) (Report, error) {
	segs, err := s.recognizeFull(ctx, mediaPath)
	if err != nil {
		return Report{}, err
	}
	if len(segs) == 0 {
		return Report{}, fmt.Errorf("transcribe %s: recognition produced no usable speech", mediaPath)
	}

	report := Report{Segments: len(segs)}

	if s.cfg.Repair.Enabled {
		repairer := transcript.NewRepairer(
			s.recognizer,
			s.newExtractor(mediaPath),
			s.cfg.Recognition.Language,
			transcript.RepairOptions{
				PassPaddings: []float64{
					s.cfg.Repair.PassOnePaddingSeconds,
					s.cfg.Repair.PassTwoPaddingSeconds,
				},
				AcceptMargin: s.cfg.Repair.AcceptMargin,
				MaxMergeGap:  s.cfg.Repair.MaxMergeGap,
			},
			s.logger,
		)
		segs, report.RepairPasses, err = repairer.Run(ctx, segs)
		if err != nil {
			return Report{}, fmt.Errorf("transcribe %s: %w", mediaPath, err)
		}
	}

	segs = transcript.SnapToWords(segs)
	segs = transcript.EnforceSpacing(segs, transcript.MinGap, transcript.MinDuration, transcript.MaxDuration)

	lines := toSubtitleLines(segs)
	report.Lines = len(lines)

	if outputPath == "" {
		outputPath = defaultOutputPath(mediaPath, ".ai.srt")
	}
	if err := subtitle.SaveFile(outputPath, lines); err != nil {
		return Report{}, err
	}
	report.Output = outputPath
	return report, nil
}

// toSubtitleLines converts second-based segments into millisecond subtitle
// lines with balanced display line breaks.
func toSubtitleLines(segs []transcript.Segment) []subtitle.Line {
	lines := make([]subtitle.Line, 0, len(segs))
	for i, seg := range segs {
		lines = append(lines, subtitle.Line{
			Index: i + 1,
			Start: int(math.Round(seg.Start * 1000)),
			End:   int(math.Round(seg.End * 1000)),
			Text:  subtitle.BreakLines(seg.Text),
		})
	}
	return lines
}
