package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"anchor/internal/config"
	"anchor/internal/logging"
	"anchor/internal/syncer"
	"anchor/internal/transcache"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag != nil {
		if path := strings.TrimSpace(*c.configFlag); path != "" {
			return path
		}
	}
	return config.DefaultConfigPath()
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.loggerOnce.Do(func() {
		logCfg := *cfg
		// The pretty console handler is for humans; piped output gets JSON.
		if logCfg.Logging.Format == "console" && !shouldColorize(os.Stderr) {
			logCfg.Logging.Format = "json"
		}
		c.logger, c.loggerErr = logging.NewFromConfig(&logCfg, os.Stderr)
	})
	return c.logger, c.loggerErr
}

// newSyncer builds the pipeline from configuration, attaching the transcript
// cache when enabled. The returned cleanup releases the cache store.
func (c *commandContext) newSyncer() (*syncer.Syncer, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	s := syncer.New(cfg, logger)
	cleanup := func() {}

	if cfg.Recognition.CacheEnabled {
		store, err := transcache.Open(cfg.Paths.CacheDir)
		if err != nil {
			logger.Warn("transcript cache unavailable", logging.Error(err))
		} else {
			s.WithCache(store)
			cleanup = func() { _ = store.Close() }
		}
	}
	return s, cleanup, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
