package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"werbench/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Matching.AudioExt != ".wav" {
		t.Fatalf("unexpected audio ext: %q", cfg.Matching.AudioExt)
	}
	if cfg.Matching.TranscriptExt != ".docx" {
		t.Fatalf("unexpected transcript ext: %q", cfg.Matching.TranscriptExt)
	}
	if cfg.Matching.ExcludePattern != "_ASA24_" {
		t.Fatalf("unexpected exclude pattern: %q", cfg.Matching.ExcludePattern)
	}
	if cfg.Engine.Backend != config.BackendWhisperX {
		t.Fatalf("unexpected backend: %q", cfg.Engine.Backend)
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled by default")
	}

	wantLogDir := filepath.Join(tempHome, ".local", "share", "werbench", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.LogDir); err != nil || !info.IsDir() {
		t.Fatalf("expected log dir to exist: %v", err)
	}
}

func TestLoadParsesFileAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[paths]
audio_dir = "~/data/audios"
transcript_dir = "~/data/transcripts"

[matching]
audio_ext = "flac"

[engine]
backend = "WHISPER-SERVER"

[whisper_server]
url = "http://localhost:9000"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing config at %q, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Paths.AudioDir != filepath.Join(tempHome, "data", "audios") {
		t.Fatalf("audio dir not expanded: %q", cfg.Paths.AudioDir)
	}
	if cfg.Matching.AudioExt != ".flac" {
		t.Fatalf("expected bare extension to gain a dot, got %q", cfg.Matching.AudioExt)
	}
	if cfg.Engine.Backend != config.BackendWhisperServer {
		t.Fatalf("expected backend normalized to lowercase, got %q", cfg.Engine.Backend)
	}
	if err := cfg.RequireTrees(); err != nil {
		t.Fatalf("RequireTrees: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:    "one-sided roots",
			mutate:  func(c *config.Config) { c.Paths.AudioDir = "/data/audios" },
			wantErr: "set together",
		},
		{
			name:    "identical extensions",
			mutate:  func(c *config.Config) { c.Matching.TranscriptExt = ".wav" },
			wantErr: "must differ",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *config.Config) { c.Engine.Backend = "deepgram" },
			wantErr: "engine.backend",
		},
		{
			name: "server backend without url",
			mutate: func(c *config.Config) {
				c.Engine.Backend = config.BackendWhisperServer
				c.WhisperServer.URL = ""
			},
			wantErr: "whisper_server.url",
		},
		{
			name: "server url without scheme",
			mutate: func(c *config.Config) {
				c.Engine.Backend = config.BackendWhisperServer
				c.WhisperServer.URL = "localhost:8080"
			},
			wantErr: "http(s)",
		},
		{
			name:    "whisperx without model",
			mutate:  func(c *config.Config) { c.WhisperX.Model = " " },
			wantErr: "whisperx.model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestRequireTreesReportsHelpfulError(t *testing.T) {
	cfg := config.Default()
	err := cfg.RequireTrees()
	if err == nil {
		t.Fatal("expected error for unset trees")
	}
	if !strings.Contains(err.Error(), "config init") {
		t.Fatalf("expected hint about config init, got %q", err.Error())
	}
}

func TestSampleConfigParses(t *testing.T) {
	if !strings.Contains(config.SampleConfig(), "[matching]") {
		t.Fatal("sample config should document the matching section")
	}
}
