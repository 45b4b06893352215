package syncer

import (
	"context"
	"fmt"

	"anchor/internal/align"
	"anchor/internal/subtitle"
)

// RefSync re-times a subtitle against an already-synced reference subtitle
// in any language with overlapping dialogue. The reference's lines are fed
// to the alignment engine as if they were recognized speech.
func (s *Syncer) RefSync(_ context.Context, targetPath, refPath, outputPath string) (Report, error) {
	target, err := subtitle.LoadFile(targetPath)
	if err != nil {
		return Report{}, err
	}
	ref, err := subtitle.LoadFile(refPath)
	if err != nil {
		return Report{}, err
	}

	pseudo := make([]align.RefSegment, 0, len(ref))
	for _, line := range ref {
		if line.Comment {
			continue
		}
		pseudo = append(pseudo, align.RefSegment{
			Start: line.StartSeconds(),
			End:   line.EndSeconds(),
			Text:  line.Text,
		})
	}

	aligner := align.New(s.alignOptions(), s.logger)
	res, err := aligner.Run(target, pseudo)
	if err != nil {
		return Report{}, fmt.Errorf("refsync %s: %w", targetPath, err)
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(targetPath, ".synced.srt")
	}
	if err := subtitle.SaveFile(outputPath, target); err != nil {
		return Report{}, err
	}

	return Report{
		Output:           outputPath,
		Lines:            res.Lines,
		Segments:         len(pseudo),
		Anchors:          res.Anchors,
		RejectedOutliers: res.Rejected,
		OverlapsFixed:    res.OverlapsFixed,
	}, nil
}
