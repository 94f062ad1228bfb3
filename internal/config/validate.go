package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	audioSet := strings.TrimSpace(c.Paths.AudioDir) != ""
	transcriptSet := strings.TrimSpace(c.Paths.TranscriptDir) != ""
	if audioSet != transcriptSet {
		return errors.New("paths.audio_dir and paths.transcript_dir must be set together")
	}
	return nil
}

// RequireTrees reports an error when the audio/transcript roots are still
// unset after config loading and flag overrides. Commands that walk the trees
// call this before doing any work.
func (c *Config) RequireTrees() error {
	if strings.TrimSpace(c.Paths.AudioDir) == "" || strings.TrimSpace(c.Paths.TranscriptDir) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/werbench/config.toml"
		}
		return fmt.Errorf("audio and transcript roots are required. Set paths.audio_dir and paths.transcript_dir in %s (create with 'werbench config init') or pass --audio-dir/--transcript-dir", defaultPath)
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.AudioExt == "" {
		return errors.New("matching.audio_ext must be set")
	}
	if c.Matching.TranscriptExt == "" {
		return errors.New("matching.transcript_ext must be set")
	}
	if c.Matching.AudioExt == c.Matching.TranscriptExt {
		return errors.New("matching.audio_ext and matching.transcript_ext must differ")
	}
	return nil
}

func (c *Config) validateEngine() error {
	switch c.Engine.Backend {
	case BackendWhisperX:
		if strings.TrimSpace(c.WhisperX.Model) == "" {
			return errors.New("whisperx.model must be set when engine.backend is \"whisperx\"")
		}
	case BackendWhisperServer:
		url := strings.TrimSpace(c.WhisperServer.URL)
		if url == "" {
			return errors.New("whisper_server.url must be set when engine.backend is \"whisper-server\"")
		}
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return fmt.Errorf("whisper_server.url must be an http(s) URL, got %q", url)
		}
		if c.WhisperServer.TimeoutSeconds < 0 {
			return errors.New("whisper_server.timeout_seconds must not be negative")
		}
	default:
		return fmt.Errorf("engine.backend must be %q or %q, got %q", BackendWhisperX, BackendWhisperServer, c.Engine.Backend)
	}
	return nil
}
