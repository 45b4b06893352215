package transcript

import (
	"context"
	"log/slog"

	"anchor/internal/logging"
)

// Repair defaults.
const (
	// PassOnePadding re-listens to the zone with a slim margin.
	PassOnePadding = 0.5
	// PassTwoPadding re-listens with generous context for zones the first
	// pass could not fix.
	PassTwoPadding = 5.0
	// DefaultAcceptMargin is how much better a repair must score before it
	// replaces the original content.
	DefaultAcceptMargin = 0.3
	// DefaultMaxMergeGap is the number of healthy segments allowed inside
	// a merged zone.
	DefaultMaxMergeGap = 2
)

// DecodeConfig selects recognizer behavior for one repair attempt.
type DecodeConfig struct {
	BeamSize            int
	VADFilter           bool
	ConditionOnPrevious bool
	Temperature         float64
	WordTimestamps      bool
}

// RepairAttempts returns the escalating decode configurations tried per
// zone: standard, then with rolling text context, then with voice activity
// detection off so the decoder has to listen to everything.
func RepairAttempts() []DecodeConfig {
	return []DecodeConfig{
		{BeamSize: 10, VADFilter: true, ConditionOnPrevious: false, WordTimestamps: true},
		{BeamSize: 10, VADFilter: true, ConditionOnPrevious: true, WordTimestamps: true},
		{BeamSize: 10, VADFilter: false, ConditionOnPrevious: false, WordTimestamps: true},
	}
}

// Recognizer transcribes one audio file under a decode configuration.
type Recognizer interface {
	Transcribe(ctx context.Context, wavPath, language string, cfg DecodeConfig) ([]Segment, error)
}

// SpanExtractor produces a recognizer-ready wav for a span of the source
// media. cleanup removes the temporary file and is safe to call always.
type SpanExtractor interface {
	ExtractSpan(ctx context.Context, start, duration float64) (path string, cleanup func(), err error)
}

// RepairOptions tunes the zone repair loop.
type RepairOptions struct {
	// PassPaddings holds one padding per pass, in seconds. Each pass
	// rescans the whole transcript from scratch.
	PassPaddings []float64
	AcceptMargin float64
	MaxMergeGap  int
}

func DefaultRepairOptions() RepairOptions {
	return RepairOptions{
		PassPaddings: []float64{PassOnePadding, PassTwoPadding},
		AcceptMargin: DefaultAcceptMargin,
		MaxMergeGap:  DefaultMaxMergeGap,
	}
}

// Repairer re-recognizes suspicious zones and keeps whichever rendition of
// each zone scores better. A zone whose repair fails or scores too low
// silently keeps its cleaned original; only the whole-file context being
// canceled aborts the loop.
type Repairer struct {
	recognizer Recognizer
	audio      SpanExtractor
	language   string
	opts       RepairOptions
	logger     *slog.Logger
}

func NewRepairer(rec Recognizer, audio SpanExtractor, language string, opts RepairOptions, logger *slog.Logger) *Repairer {
	if len(opts.PassPaddings) == 0 {
		opts.PassPaddings = DefaultRepairOptions().PassPaddings
	}
	if opts.AcceptMargin == 0 {
		opts.AcceptMargin = DefaultAcceptMargin
	}
	if opts.MaxMergeGap == 0 {
		opts.MaxMergeGap = DefaultMaxMergeGap
	}
	return &Repairer{
		recognizer: rec,
		audio:      audio,
		language:   language,
		opts:       opts,
		logger:     logging.NewComponentLogger(logger, "repair"),
	}
}

// PassReport summarizes one repair pass.
type PassReport struct {
	Zones    int
	Repaired int
}

// Run executes every configured pass over segs and returns the repaired
// transcript plus one report per pass.
func (r *Repairer) Run(ctx context.Context, segs []Segment) ([]Segment, []PassReport, error) {
	current := CloneSegments(segs)
	reports := make([]PassReport, 0, len(r.opts.PassPaddings))

	for pass, padding := range r.opts.PassPaddings {
		repaired, report, err := r.runPass(ctx, current, padding)
		if err != nil {
			return nil, reports, err
		}
		r.logger.Info("repair pass complete",
			logging.Int("pass", pass+1),
			logging.Int("zones", report.Zones),
			logging.Int("repaired", report.Repaired))
		current = repaired
		reports = append(reports, report)
	}
	return current, reports, nil
}

func (r *Repairer) runPass(ctx context.Context, segs []Segment, padding float64) ([]Segment, PassReport, error) {
	indices := SuspiciousIndices(segs)
	if len(indices) == 0 {
		return segs, PassReport{}, nil
	}

	zones := MergeZones(indices, r.opts.MaxMergeGap)
	report := PassReport{Zones: len(zones)}
	out := CloneSegments(segs)

	// Zones are processed back to front so earlier indices stay valid
	// while later splices change the slice length.
	for i := len(zones) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}
		zone := zones[i]
		block := out[zone.Start : zone.End+1]

		originalClean := CleanSegments(block)
		origScore := QualityScore(originalClean)

		final := originalClean
		if candidate := r.recognizeZoneBest(ctx, block, padding); candidate != nil {
			if sc := QualityScore(candidate); sc > origScore+r.opts.AcceptMargin {
				final = candidate
				report.Repaired++
				r.logger.Debug("zone repaired",
					logging.Int("zone_start", zone.Start),
					logging.Int("zone_end", zone.End),
					logging.Float64("original_score", origScore),
					logging.Float64("repaired_score", sc))
			}
		}

		out = spliceSegments(out, zone.Start, zone.End, final)
		insertEnd := zone.Start + len(final) - 1
		out, insertEnd = StitchBoundaries(out, zone.Start, insertEnd)
		out = DedupeWindow(out, zone.Start, insertEnd)
	}

	return CleanupRedundancies(out), report, nil
}

// recognizeZoneBest re-listens to the zone's audio under each decode
// configuration and returns the best-scoring clip, or nil when every
// attempt failed or produced nothing usable.
func (r *Repairer) recognizeZoneBest(ctx context.Context, zone []Segment, padding float64) []Segment {
	coreStart := zone[0].Start
	coreEnd := zone[len(zone)-1].End
	start := max(0.0, coreStart-padding)
	duration := coreEnd + padding - start

	wav, cleanup, err := r.audio.ExtractSpan(ctx, start, duration)
	if err != nil {
		r.logger.Warn("audio extraction failed, keeping original zone", logging.Error(err))
		return nil
	}
	defer cleanup()

	var best []Segment
	bestScore := emptyZoneScore

	for _, cfg := range RepairAttempts() {
		raw, err := r.recognizer.Transcribe(ctx, wav, r.language, cfg)
		if err != nil {
			r.logger.Debug("repair attempt failed", logging.Error(err))
			continue
		}

		var repaired []Segment
		for _, s := range raw {
			txt := CleanText(s.Text)
			if txt == "" {
				continue
			}
			seg := Segment{
				Start:      start + s.Start,
				End:        start + s.End,
				Text:       txt,
				Provenance: ProvenanceRepaired,
			}
			// Clip strictly to the zone core so the repair cannot bleed
			// over segments that were never suspicious.
			if seg.End <= coreStart || seg.Start >= coreEnd {
				continue
			}
			repaired = append(repaired, seg)
		}

		if sc := QualityScore(repaired); sc > bestScore {
			bestScore = sc
			best = repaired
		}
	}
	return best
}

// spliceSegments replaces segs[start..end] inclusive with block, returning
// a fresh slice so earlier zone indices stay meaningful.
func spliceSegments(segs []Segment, start, end int, block []Segment) []Segment {
	out := make([]Segment, 0, len(segs)-(end-start+1)+len(block))
	out = append(out, segs[:start]...)
	out = append(out, block...)
	out = append(out, segs[end+1:]...)
	return out
}
