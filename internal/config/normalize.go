package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// expandPath resolves a leading ~ to the user's home directory and returns
// an absolute path.
func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("empty path")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			trimmed = home
		} else {
			trimmed = filepath.Join(home, trimmed[2:])
		}
	}
	return filepath.Abs(trimmed)
}

// normalize expands paths and fills blank values from defaults. Invalid
// numeric values are left for Validate to reject.
func (c *Config) normalize() {
	defaults := Default()

	c.Paths.CacheDir = normalizeDir(c.Paths.CacheDir, defaults.Paths.CacheDir)
	c.Paths.LogDir = normalizeDir(c.Paths.LogDir, defaults.Paths.LogDir)
	c.Paths.WorkDir = normalizeDir(c.Paths.WorkDir, defaults.Paths.WorkDir)

	c.Recognition.Command = fallback(c.Recognition.Command, defaults.Recognition.Command)
	c.Recognition.Model = fallback(c.Recognition.Model, defaults.Recognition.Model)
	c.Recognition.Device = strings.ToLower(fallback(c.Recognition.Device, defaults.Recognition.Device))
	c.Recognition.ComputeType = fallback(c.Recognition.ComputeType, defaults.Recognition.ComputeType)
	c.Recognition.Language = strings.ToLower(strings.TrimSpace(c.Recognition.Language))
	if c.Recognition.TimeoutSeconds <= 0 {
		c.Recognition.TimeoutSeconds = defaults.Recognition.TimeoutSeconds
	}

	if c.Align.SceneGapSeconds == 0 {
		c.Align.SceneGapSeconds = defaults.Align.SceneGapSeconds
	}
	if c.Align.OutlierThresholdSeconds == 0 {
		c.Align.OutlierThresholdSeconds = defaults.Align.OutlierThresholdSeconds
	}
	if c.Align.DriftWindow == 0 {
		c.Align.DriftWindow = defaults.Align.DriftWindow
	}
	if c.Align.MinDurationMillis == 0 {
		c.Align.MinDurationMillis = defaults.Align.MinDurationMillis
	}
	if c.Align.GapMillis == 0 {
		c.Align.GapMillis = defaults.Align.GapMillis
	}

	if c.Repair.PassOnePaddingSeconds == 0 {
		c.Repair.PassOnePaddingSeconds = defaults.Repair.PassOnePaddingSeconds
	}
	if c.Repair.PassTwoPaddingSeconds == 0 {
		c.Repair.PassTwoPaddingSeconds = defaults.Repair.PassTwoPaddingSeconds
	}
	if c.Repair.AcceptMargin == 0 {
		c.Repair.AcceptMargin = defaults.Repair.AcceptMargin
	}
	if c.Repair.MaxMergeGap == 0 {
		c.Repair.MaxMergeGap = defaults.Repair.MaxMergeGap
	}

	c.Logging.Format = strings.ToLower(fallback(c.Logging.Format, defaults.Logging.Format))
	c.Logging.Level = strings.ToLower(fallback(c.Logging.Level, defaults.Logging.Level))
}

func normalizeDir(value, fallbackValue string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		v = fallbackValue
	}
	expanded, err := expandPath(v)
	if err != nil {
		return v
	}
	return expanded
}

func fallback(value, fallbackValue string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return fallbackValue
	}
	return v
}
