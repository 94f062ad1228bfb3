package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration for the evaluation trees and outputs.
type Paths struct {
	AudioDir      string `toml:"audio_dir"`
	TranscriptDir string `toml:"transcript_dir"`
	OutputFile    string `toml:"output_file"`
	LogDir        string `toml:"log_dir"`
}

// Matching contains configuration for the correspondence-matching rules and
// for how texts are compared.
type Matching struct {
	AudioExt       string `toml:"audio_ext"`
	TranscriptExt  string `toml:"transcript_ext"`
	ExcludePattern string `toml:"exclude_pattern"`
	// CaseFold case-folds reference and hypothesis before scoring. Off by
	// default: casing differences count as errors.
	CaseFold bool `toml:"case_fold"`
}

// Engine selects which transcription backend scores records.
type Engine struct {
	Backend  string `toml:"backend"`
	Language string `toml:"language"`
}

// WhisperX contains configuration for the uvx-launched WhisperX backend.
type WhisperX struct {
	Model       string `toml:"model"`
	CUDAEnabled bool   `toml:"cuda_enabled"`
	CacheDir    string `toml:"cache_dir"`
}

// WhisperServer contains configuration for the whisper.cpp server backend.
type WhisperServer struct {
	URL            string `toml:"url"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// History contains configuration for the run history store.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for werbench.
//
// Configuration sections by subsystem:
//   - Paths: audio/transcript roots, report output, log directory
//   - Matching: file extensions and the audio exclusion substring
//   - Engine: transcription backend selection and language hint
//   - WhisperX: uvx-launched WhisperX settings
//   - WhisperServer: whisper.cpp server endpoint settings
//   - History: SQLite run history
//   - Logging: log format and level
type Config struct {
	Paths         Paths         `toml:"paths"`
	Matching      Matching      `toml:"matching"`
	Engine        Engine        `toml:"engine"`
	WhisperX      WhisperX      `toml:"whisperx"`
	WhisperServer WhisperServer `toml:"whisper_server"`
	History       History       `toml:"history"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/werbench/config.toml")
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// ExpandPath expands a leading ~ and returns a cleaned absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return value
// is the resolved path and the third reports whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("werbench.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// normalize expands user paths and fills derived defaults.
func (c *Config) normalize() error {
	fields := []*string{
		&c.Paths.AudioDir,
		&c.Paths.TranscriptDir,
		&c.Paths.OutputFile,
		&c.Paths.LogDir,
		&c.WhisperX.CacheDir,
		&c.History.Path,
	}
	for _, field := range fields {
		if strings.TrimSpace(*field) == "" {
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	if !strings.HasPrefix(c.Matching.AudioExt, ".") && c.Matching.AudioExt != "" {
		c.Matching.AudioExt = "." + c.Matching.AudioExt
	}
	if !strings.HasPrefix(c.Matching.TranscriptExt, ".") && c.Matching.TranscriptExt != "" {
		c.Matching.TranscriptExt = "." + c.Matching.TranscriptExt
	}
	c.Engine.Backend = strings.ToLower(strings.TrimSpace(c.Engine.Backend))
	return nil
}

// EnsureDirectories creates the directories werbench writes into.
func (c *Config) EnsureDirectories() error {
	dirs := make([]string, 0, 2)
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		dirs = append(dirs, c.Paths.LogDir)
	}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) != "" {
		dirs = append(dirs, filepath.Dir(c.History.Path))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
