package testsupport

import (
	"path/filepath"
	"testing"

	"werbench/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.AudioDir = filepath.Join(base, "audios")
	cfg.Paths.TranscriptDir = filepath.Join(base, "transcripts")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.History.Path = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithHistory enables the run history store on the test config.
func WithHistory() ConfigOption {
	return func(c *config.Config) {
		c.History.Enabled = true
	}
}

// WithExcludePattern overrides the audio exclusion substring.
func WithExcludePattern(pattern string) ConfigOption {
	return func(c *config.Config) {
		c.Matching.ExcludePattern = pattern
	}
}
