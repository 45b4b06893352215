package media

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const (
	ffmpegBinary  = "ffmpeg"
	ffprobeBinary = "ffprobe"
)

// CheckTools verifies the external binaries are on PATH.
func CheckTools() error {
	for _, name := range []string{ffmpegBinary, ffprobeBinary} {
		if _, err := exec.LookPath(name); err != nil {
			return fmt.Errorf("required tool %q not found in PATH: %w", name, err)
		}
	}
	return nil
}

// Duration returns the container duration of a media file in seconds.
func Duration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
	output, err := exec.CommandContext(ctx, ffprobeBinary, args...).Output() //nolint:gosec
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return parseProbeDuration(output)
}

func parseProbeDuration(output []byte) (float64, error) {
	text := strings.TrimSpace(string(output))
	seconds, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", text, err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("negative ffprobe duration %q", text)
	}
	return seconds, nil
}
