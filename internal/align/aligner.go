package align

import (
	"log/slog"

	"anchor/internal/logging"
	"anchor/internal/subtitle"
)

// Default tunables. Exposed through Options so config can override them.
const (
	DefaultSceneGapSeconds  = 5.0
	DefaultOutlierThreshold = 1.5
	DefaultDriftWindow      = 10
	DefaultGapMillis        = 50
	DefaultMinDurationMs    = 600
)

// Options are the alignment engine tunables.
type Options struct {
	SceneGapSeconds         float64
	OutlierThresholdSeconds float64
	DriftWindow             int
	GapMillis               int
	MinDurationMillis       int
}

// DefaultOptions returns the standard engine tuning.
func DefaultOptions() Options {
	return Options{
		SceneGapSeconds:         DefaultSceneGapSeconds,
		OutlierThresholdSeconds: DefaultOutlierThreshold,
		DriftWindow:             DefaultDriftWindow,
		GapMillis:               DefaultGapMillis,
		MinDurationMillis:       DefaultMinDurationMs,
	}
}

// Result reports what alignment did, for user-facing summaries.
type Result struct {
	Lines         int
	Candidates    int
	Anchors       int
	Rejected      int
	OverlapsFixed int
}

// Aligner maps a subtitle's dialogue onto reference timings.
type Aligner struct {
	opts   Options
	logger *slog.Logger
}

// New creates an Aligner. A nil logger disables logging.
func New(opts Options, logger *slog.Logger) *Aligner {
	if opts.DriftWindow <= 0 {
		opts.DriftWindow = DefaultDriftWindow
	}
	if opts.SceneGapSeconds <= 0 {
		opts.SceneGapSeconds = DefaultSceneGapSeconds
	}
	if opts.OutlierThresholdSeconds <= 0 {
		opts.OutlierThresholdSeconds = DefaultOutlierThreshold
	}
	return &Aligner{opts: opts, logger: logging.NewComponentLogger(logger, "align")}
}

// Run rewrites the timing of lines in place so they follow the reference
// stream. Text, order, and per-line durations are preserved. Returns
// ErrNoMatch when not a single anchor can be established; in that case
// lines are left untouched.
func (a *Aligner) Run(lines []subtitle.Line, ref []RefSegment) (Result, error) {
	result := Result{Lines: len(lines)}

	candidates := matchCandidates(lines, ref)
	result.Candidates = len(candidates)
	if len(candidates) == 0 {
		return result, ErrNoMatch
	}

	kept, rejected := filterDrift(candidates, a.opts.DriftWindow, a.opts.OutlierThresholdSeconds)
	result.Rejected = rejected
	if len(kept) == 0 {
		return result, ErrNoMatch
	}

	anchors := smoothByScene(kept, a.opts.SceneGapSeconds)
	result.Anchors = len(anchors)

	a.logger.Debug("anchors established",
		logging.Int("candidates", len(candidates)),
		logging.Int("rejected", rejected),
		logging.Int("anchors", len(anchors)),
	)

	reconstruct(lines, anchors)
	result.OverlapsFixed = EnforceSpacing(lines, a.opts.GapMillis, a.opts.MinDurationMillis)

	a.logger.Info("timeline reconstructed",
		logging.Int("lines", result.Lines),
		logging.Int("anchors", result.Anchors),
		logging.Int("rejected_outliers", result.Rejected),
		logging.Int("overlaps_fixed", result.OverlapsFixed),
	)

	return result, nil
}
