package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// denoiseFilter suppresses broadband noise and music bleed before
// recognition. Speech sits comfortably inside the 80Hz..12kHz band.
const denoiseFilter = "afftdn=nf=-25,highpass=f=80,lowpass=f=12000,dynaudnorm"

// Extractor produces recognizer-ready wav clips from one source file.
// Clips are mono 16kHz signed 16-bit PCM.
type Extractor struct {
	Source  string
	WorkDir string
	Denoise bool
}

// ExtractSpan writes the [start, start+duration] span of the source's
// audio to a temporary wav and returns its path. cleanup removes the file.
func (e *Extractor) ExtractSpan(ctx context.Context, start, duration float64) (string, func(), error) {
	dest := filepath.Join(e.WorkDir, fmt.Sprintf("span-%s.wav", uuid.NewString()))
	args := spanArgs(e.Source, start, duration, e.Denoise, dest)

	cmd := exec.CommandContext(ctx, ffmpegBinary, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", func() {}, fmt.Errorf("ffmpeg extract span: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return dest, func() { _ = os.Remove(dest) }, nil
}

func spanArgs(source string, start, duration float64, denoise bool, dest string) []string {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-ss", fmt.Sprintf("%.3f", start),
		"-t", fmt.Sprintf("%.3f", duration),
		"-i", source,
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
	}
	if denoise {
		args = append(args, "-af", denoiseFilter)
	}
	return append(args, dest)
}

// ExtractAudio writes the source's entire audio stream to dest as a
// recognizer-ready wav.
func ExtractAudio(ctx context.Context, source, dest string) error {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dest,
	}
	cmd := exec.CommandContext(ctx, ffmpegBinary, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
