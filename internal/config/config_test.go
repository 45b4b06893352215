package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Align.DriftWindow != defaultDriftWindow {
		t.Errorf("DriftWindow = %d, want %d", cfg.Align.DriftWindow, defaultDriftWindow)
	}
	if cfg.Align.OutlierThresholdSeconds != defaultOutlierThreshold {
		t.Errorf("OutlierThresholdSeconds = %v, want %v", cfg.Align.OutlierThresholdSeconds, defaultOutlierThreshold)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[align]
drift_window = 4
outlier_threshold_seconds = 2.5

[recognition]
device = "CUDA"
language = "EN"

[logging]
format = "JSON"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Align.DriftWindow != 4 {
		t.Errorf("DriftWindow = %d, want 4", cfg.Align.DriftWindow)
	}
	if cfg.Align.OutlierThresholdSeconds != 2.5 {
		t.Errorf("OutlierThresholdSeconds = %v, want 2.5", cfg.Align.OutlierThresholdSeconds)
	}
	if cfg.Recognition.Device != "cuda" {
		t.Errorf("Device = %q, want cuda", cfg.Recognition.Device)
	}
	if cfg.Recognition.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Recognition.Language)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Logging.Format)
	}
	// Untouched sections keep defaults.
	if cfg.Repair.AcceptMargin != defaultAcceptMargin {
		t.Errorf("AcceptMargin = %v, want %v", cfg.Repair.AcceptMargin, defaultAcceptMargin)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad device", func(c *Config) { c.Recognition.Device = "tpu" }, "recognition.device"},
		{"zero window", func(c *Config) { c.Align.DriftWindow = 0 }, "align.drift_window"},
		{"inverted padding", func(c *Config) {
			c.Repair.PassOnePaddingSeconds = 6.0
			c.Repair.PassTwoPaddingSeconds = 5.0
		}, "repair.pass_two_padding_seconds"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected error on second write")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config invalid: %v", err)
	}
}
