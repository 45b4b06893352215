// Package syncer wires recognition, repair, alignment, and subtitle IO
// into the operations the CLI exposes.
package syncer

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"anchor/internal/align"
	"anchor/internal/config"
	"anchor/internal/logging"
	"anchor/internal/media"
	"anchor/internal/services/whisper"
	"anchor/internal/transcache"
	"anchor/internal/transcript"
)

// Recognizer transcribes an audio file. Satisfied by the whisper service.
type Recognizer interface {
	Transcribe(ctx context.Context, wavPath, language string, cfg transcript.DecodeConfig) ([]transcript.Segment, error)
}

// Cache persists full-file transcripts between runs.
type Cache interface {
	Get(ctx context.Context, key transcache.Key) ([]transcript.Segment, bool, error)
	Put(ctx context.Context, key transcache.Key, segs []transcript.Segment) error
}

// Report summarizes one sync or transcription run for the CLI.
type Report struct {
	Output           string
	Lines            int
	Segments         int
	Anchors          int
	RejectedOutliers int
	OverlapsFixed    int
	RepairPasses     []transcript.PassReport
}

// Syncer orchestrates the pipeline stages for one configuration.
type Syncer struct {
	cfg    *config.Config
	logger *slog.Logger

	recognizer   Recognizer
	cache        Cache
	extractAudio func(ctx context.Context, source, dest string) error
	newExtractor func(source string) transcript.SpanExtractor
}

// New creates a Syncer backed by the external recognizer from cfg.
func New(cfg *config.Config, logger *slog.Logger) *Syncer {
	svc := whisper.NewService(whisper.Config{
		Command:        cfg.Recognition.Command,
		Model:          cfg.Recognition.Model,
		Device:         cfg.Recognition.Device,
		ComputeType:    cfg.Recognition.ComputeType,
		TimeoutSeconds: cfg.Recognition.TimeoutSeconds,
	}, logger)

	s := &Syncer{
		cfg:          cfg,
		logger:       logging.NewComponentLogger(logger, "syncer"),
		recognizer:   svc,
		extractAudio: media.ExtractAudio,
	}
	s.newExtractor = func(source string) transcript.SpanExtractor {
		return &media.Extractor{
			Source:  source,
			WorkDir: cfg.Paths.WorkDir,
			Denoise: cfg.Repair.Denoise,
		}
	}
	return s
}

// WithRecognizer replaces the recognizer (for testing).
func (s *Syncer) WithRecognizer(r Recognizer) { s.recognizer = r }

// WithCache attaches a transcript cache.
func (s *Syncer) WithCache(c Cache) { s.cache = c }

// WithAudioExtract replaces the full-audio extraction step (for testing).
func (s *Syncer) WithAudioExtract(fn func(ctx context.Context, source, dest string) error) {
	s.extractAudio = fn
}

// WithSpanExtractor replaces the repair span extraction step (for testing).
func (s *Syncer) WithSpanExtractor(fn func(source string) transcript.SpanExtractor) {
	s.newExtractor = fn
}

func (s *Syncer) alignOptions() align.Options {
	return align.Options{
		SceneGapSeconds:         s.cfg.Align.SceneGapSeconds,
		OutlierThresholdSeconds: s.cfg.Align.OutlierThresholdSeconds,
		DriftWindow:             s.cfg.Align.DriftWindow,
		GapMillis:               s.cfg.Align.GapMillis,
		MinDurationMillis:       s.cfg.Align.MinDurationMillis,
	}
}

// defaultOutputPath swaps a file's extension for suffix, e.g. ".synced.srt".
func defaultOutputPath(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}
