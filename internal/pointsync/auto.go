package pointsync

import (
	"fmt"
	"log/slog"

	"anchor/internal/logging"
	"anchor/internal/subtitle"
)

// Result describes an applied linear correction.
type Result struct {
	Slope        float64
	OffsetMillis float64
	StartMatch   MatchPoint
	EndMatch     MatchPoint
}

// AutoSync locks a sync point near the start and one near the end of the
// target by fuzzy-matching lines against the reference, then applies the
// linear correction to target in place. target is untouched on error.
func AutoSync(target, ref []subtitle.Line, logger *slog.Logger) (Result, error) {
	log := logging.NewComponentLogger(logger, "pointsync")

	startMatch, ok := FindBestMatch(
		FilteredLines(target, SectionStart, sectionLimit),
		FilteredLines(ref, SectionStart, sectionLimit),
		false,
	)
	if !ok {
		return Result{}, fmt.Errorf("%w: no start match", ErrNoSyncPoints)
	}

	endMatch, ok := FindBestMatch(
		FilteredLines(target, SectionEnd, sectionLimit),
		FilteredLines(ref, SectionEnd, sectionLimit),
		true,
	)
	if !ok {
		return Result{}, fmt.Errorf("%w: no end match", ErrNoSyncPoints)
	}

	if endMatch.TargetMillis <= startMatch.TargetMillis {
		return Result{}, fmt.Errorf("%w: end point not after start point", ErrNoSyncPoints)
	}

	log.Info("sync points locked",
		logging.String("start_text", startMatch.Text),
		logging.Float64("start_score", startMatch.Score),
		logging.String("end_text", endMatch.Text),
		logging.Float64("end_score", endMatch.Score))

	m, c, err := ApplyLinearCorrection(target,
		startMatch.TargetMillis, startMatch.RefMillis,
		endMatch.TargetMillis, endMatch.RefMillis)
	if err != nil {
		return Result{}, err
	}

	log.Info("linear correction applied",
		logging.Float64("slope", m),
		logging.Float64("offset_ms", c))

	return Result{
		Slope:        m,
		OffsetMillis: c,
		StartMatch:   startMatch,
		EndMatch:     endMatch,
	}, nil
}
