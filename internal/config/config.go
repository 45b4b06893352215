package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	CacheDir string `toml:"cache_dir"`
	LogDir   string `toml:"log_dir"`
	WorkDir  string `toml:"work_dir"`
}

// Recognition contains settings for the external speech recognition engine.
type Recognition struct {
	Command        string `toml:"command"`
	Model          string `toml:"model"`
	Device         string `toml:"device"`
	ComputeType    string `toml:"compute_type"`
	Language       string `toml:"language"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	CacheEnabled   bool   `toml:"cache_enabled"`
}

// Align contains tunables for the timeline alignment engine.
type Align struct {
	SceneGapSeconds         float64 `toml:"scene_gap_seconds"`
	OutlierThresholdSeconds float64 `toml:"outlier_threshold_seconds"`
	DriftWindow             int     `toml:"drift_window"`
	MinDurationMillis       int     `toml:"min_duration_ms"`
	GapMillis               int     `toml:"gap_ms"`
}

// Repair contains tunables for the transcription zone repair loop.
type Repair struct {
	Enabled               bool    `toml:"enabled"`
	PassOnePaddingSeconds float64 `toml:"pass_one_padding_seconds"`
	PassTwoPaddingSeconds float64 `toml:"pass_two_padding_seconds"`
	AcceptMargin          float64 `toml:"accept_margin"`
	MaxMergeGap           int     `toml:"max_merge_gap"`
	Denoise               bool    `toml:"denoise"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config is the root configuration for anchor.
type Config struct {
	Paths       Paths       `toml:"paths"`
	Recognition Recognition `toml:"recognition"`
	Align       Align       `toml:"align"`
	Repair      Repair      `toml:"repair"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the standard location of the config file.
func DefaultConfigPath() string {
	return "~/.config/anchor/config.toml"
}

// Load reads configuration from path, layering file values over defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.normalize()
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", resolved, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", resolved, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the embedded sample configuration to path, creating
// parent directories as needed. It refuses to overwrite an existing file.
func WriteSample(path string) error {
	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if _, err := os.Stat(resolved); err == nil {
		return fmt.Errorf("config file already exists: %s", resolved)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(resolved, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// EnsureDirectories creates the cache, log, and work directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.CacheDir, c.Paths.LogDir, c.Paths.WorkDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure directory %s: %w", dir, err)
		}
	}
	return nil
}
