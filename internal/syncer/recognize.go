package syncer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"anchor/internal/logging"
	"anchor/internal/transcache"
	"anchor/internal/transcript"
)

// fullDecodeConfig is the first-pass configuration for whole-file
// recognition: modest beam, no VAD so quiet dialogue is not skipped, no
// rolling context so one hallucination cannot poison the rest of the file.
func fullDecodeConfig() transcript.DecodeConfig {
	return transcript.DecodeConfig{
		BeamSize:            5,
		VADFilter:           false,
		ConditionOnPrevious: false,
		WordTimestamps:      true,
	}
}

// recognizeFull produces the confidence-filtered transcript of the whole
// media file, consulting the cache when one is attached.
func (s *Syncer) recognizeFull(ctx context.Context, mediaPath string) ([]transcript.Segment, error) {
	var key transcache.Key
	if s.cache != nil {
		fp, err := transcache.Fingerprint(mediaPath)
		if err != nil {
			s.logger.Warn("fingerprint failed, skipping cache", logging.Error(err))
		} else {
			key = transcache.Key{
				Fingerprint: fp,
				Model:       s.cfg.Recognition.Model,
				Language:    s.cfg.Recognition.Language,
			}
			if segs, ok, err := s.cache.Get(ctx, key); err != nil {
				s.logger.Warn("cache read failed", logging.Error(err))
			} else if ok {
				s.logger.Info("transcript cache hit",
					logging.String("source", mediaPath),
					logging.Int("segments", len(segs)))
				return segs, nil
			}
		}
	}

	wav := filepath.Join(s.cfg.Paths.WorkDir, fmt.Sprintf("audio-%s.wav", uuid.NewString()))
	if err := s.extractAudio(ctx, mediaPath, wav); err != nil {
		return nil, fmt.Errorf("recognize %s: %w", mediaPath, err)
	}
	defer os.Remove(wav)

	segs, err := s.recognizer.Transcribe(ctx, wav, s.cfg.Recognition.Language, fullDecodeConfig())
	if err != nil {
		return nil, fmt.Errorf("recognize %s: %w", mediaPath, err)
	}

	kept := transcript.FilterLowConfidence(segs, transcript.MaxNoSpeechProb, transcript.MinAvgLogProb)
	s.logger.Info("recognition complete",
		logging.String("source", mediaPath),
		logging.Int("segments", len(segs)),
		logging.Int("dropped_low_confidence", len(segs)-len(kept)))

	if s.cache != nil && key.Fingerprint != "" {
		if err := s.cache.Put(ctx, key, kept); err != nil {
			s.logger.Warn("cache write failed", logging.Error(err))
		}
	}
	return kept, nil
}
