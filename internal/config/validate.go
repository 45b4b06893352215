package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks configuration values for consistency. It returns a single
// error aggregating every problem found.
func (c *Config) Validate() error {
	var problems []string

	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format: unsupported value %q", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level: unsupported value %q", c.Logging.Level))
	}

	switch c.Recognition.Device {
	case "cpu", "cuda", "auto":
	default:
		problems = append(problems, fmt.Sprintf("recognition.device: unsupported value %q", c.Recognition.Device))
	}

	if c.Align.SceneGapSeconds <= 0 {
		problems = append(problems, "align.scene_gap_seconds: must be positive")
	}
	if c.Align.OutlierThresholdSeconds <= 0 {
		problems = append(problems, "align.outlier_threshold_seconds: must be positive")
	}
	if c.Align.DriftWindow < 1 {
		problems = append(problems, "align.drift_window: must be at least 1")
	}
	if c.Align.MinDurationMillis < 0 {
		problems = append(problems, "align.min_duration_ms: must not be negative")
	}
	if c.Align.GapMillis < 0 {
		problems = append(problems, "align.gap_ms: must not be negative")
	}

	if c.Repair.PassOnePaddingSeconds < 0 {
		problems = append(problems, "repair.pass_one_padding_seconds: must not be negative")
	}
	if c.Repair.PassTwoPaddingSeconds < c.Repair.PassOnePaddingSeconds {
		problems = append(problems, "repair.pass_two_padding_seconds: must not be smaller than pass one padding")
	}
	if c.Repair.AcceptMargin < 0 {
		problems = append(problems, "repair.accept_margin: must not be negative")
	}
	if c.Repair.MaxMergeGap < 0 {
		problems = append(problems, "repair.max_merge_gap: must not be negative")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("invalid configuration: " + strings.Join(problems, "; "))
}
