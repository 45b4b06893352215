// Package whisper shells out to a faster-whisper CLI via uvx and parses
// its JSON output into transcript segments.
package whisper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"anchor/internal/logging"
	"anchor/internal/transcript"
)

const (
	// DefaultCommand launches the recognizer through uvx so no local
	// Python environment management is needed.
	DefaultCommand = "uvx"
	cliPackage     = "whisper-ctranslate2"
)

// Config selects the recognizer invocation.
type Config struct {
	Command        string
	Model          string
	Device         string
	ComputeType    string
	TimeoutSeconds int
}

// Service runs speech recognition as an external process.
type Service struct {
	cfg           Config
	logger        *slog.Logger
	commandRunner func(ctx context.Context, name string, args ...string) error
}

func NewService(cfg Config, logger *slog.Logger) *Service {
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	return &Service{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "whisper"),
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Ready reports whether the recognizer command is available.
func (s *Service) Ready() error {
	if _, err := exec.LookPath(s.cfg.Command); err != nil {
		return fmt.Errorf("recognizer command %q not found in PATH: %w", s.cfg.Command, err)
	}
	return nil
}

// Transcribe recognizes speech in wavPath under the decode configuration
// and returns the parsed segments. Implements the repair loop's Recognizer.
func (s *Service) Transcribe(ctx context.Context, wavPath, language string, decode transcript.DecodeConfig) ([]transcript.Segment, error) {
	outputDir, err := os.MkdirTemp("", "anchor-whisper-")
	if err != nil {
		return nil, fmt.Errorf("whisper: create output dir: %w", err)
	}
	defer os.RemoveAll(outputDir)

	if s.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	args := buildArgs(s.cfg, wavPath, outputDir, language, decode)
	s.logger.Debug("running recognizer",
		logging.String("source", wavPath),
		logging.Int("beam_size", decode.BeamSize),
		logging.Bool("vad_filter", decode.VADFilter))

	if err := s.run(ctx, s.cfg.Command, args...); err != nil {
		return nil, fmt.Errorf("whisper: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(wavPath), filepath.Ext(wavPath))
	return LoadSegments(filepath.Join(outputDir, base+".json"))
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// buildArgs constructs the uvx command arguments for the recognizer CLI.
// The CLI parses booleans Python-style, hence "True"/"False".
func buildArgs(cfg Config, source, outputDir, language string, decode transcript.DecodeConfig) []string {
	args := []string{
		cliPackage,
		source,
		"--model", cfg.Model,
		"--device", cfg.Device,
		"--compute_type", cfg.ComputeType,
		"--output_dir", outputDir,
		"--output_format", "json",
		"--beam_size", strconv.Itoa(decode.BeamSize),
		"--temperature", strconv.FormatFloat(decode.Temperature, 'g', -1, 64),
		"--vad_filter", pyBool(decode.VADFilter),
		"--condition_on_previous_text", pyBool(decode.ConditionOnPrevious),
	}
	if decode.WordTimestamps {
		args = append(args, "--word_timestamps", "True")
	}
	if language != "" {
		args = append(args, "--language", language)
	}
	return args
}

func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
