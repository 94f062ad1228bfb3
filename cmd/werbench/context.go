package main

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"werbench/internal/config"
	"werbench/internal/logging"
)

// commandContext lazily loads configuration once per invocation and
// shares it across subcommands.
type commandContext struct {
	configFlag *string

	once   sync.Once
	cfg    *config.Config
	path   string
	exists bool
	err    error

	logOnce sync.Once
	logger  *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.once.Do(func() {
		path := ""
		if c.configFlag != nil {
			path = *c.configFlag
		}
		c.cfg, c.path, c.exists, c.err = config.Load(path)
	})
	return c.cfg, c.err
}

func (c *commandContext) configPath() string {
	return c.path
}

func (c *commandContext) configExists() bool {
	return c.exists
}

// loggerFor builds the shared logger on first use. Falls back to a
// no-op logger when configuration failed to load.
func (c *commandContext) loggerFor() *slog.Logger {
	c.logOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil || cfg == nil {
			c.logger = logging.NewNop()
			return
		}
		logger, logErr := logging.NewFromConfig(cfg)
		if logErr != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// applyTreeFlags overrides the configured tree roots from command-line
// flags and verifies both roots are present afterwards.
func (c *commandContext) applyTreeFlags(audioDir, transcriptDir string) (*config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if audioDir != "" {
		expanded, expandErr := config.ExpandPath(audioDir)
		if expandErr != nil {
			return nil, fmt.Errorf("resolving audio dir: %w", expandErr)
		}
		cfg.Paths.AudioDir = expanded
	}
	if transcriptDir != "" {
		expanded, expandErr := config.ExpandPath(transcriptDir)
		if expandErr != nil {
			return nil, fmt.Errorf("resolving transcript dir: %w", expandErr)
		}
		cfg.Paths.TranscriptDir = expanded
	}
	if err := cfg.RequireTrees(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for current := cmd; current != nil; current = current.Parent() {
		if current.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
