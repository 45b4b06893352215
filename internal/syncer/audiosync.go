package syncer

import (
	"context"
	"fmt"

	"anchor/internal/align"
	"anchor/internal/subtitle"
	"anchor/internal/transcript"
)

// AudioSync re-times an existing subtitle against the speech actually
// heard in the media file. The subtitle's text is never changed, only its
// timing. With outputPath empty the result lands next to the subtitle with
// a .synced.srt suffix.
func (s *Syncer) AudioSync(ctx context.Context, mediaPath, subtitlePath, outputPath string) (Report, error) {
	lines, err := subtitle.LoadFile(subtitlePath)
	if err != nil {
		return Report{}, err
	}

	segs, err := s.recognizeFull(ctx, mediaPath)
	if err != nil {
		return Report{}, err
	}
	if len(segs) == 0 {
		return Report{}, fmt.Errorf("audiosync %s: recognition produced no usable speech", mediaPath)
	}

	aligner := align.New(s.alignOptions(), s.logger)
	res, err := aligner.Run(lines, transcript.RefSegments(segs))
	if err != nil {
		return Report{}, fmt.Errorf("audiosync %s: %w", subtitlePath, err)
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(subtitlePath, ".synced.srt")
	}
	if err := subtitle.SaveFile(outputPath, lines); err != nil {
		return Report{}, err
	}

	return Report{
		Output:           outputPath,
		Lines:            res.Lines,
		Segments:         len(segs),
		Anchors:          res.Anchors,
		RejectedOutliers: res.Rejected,
		OverlapsFixed:    res.OverlapsFixed,
	}, nil
}
