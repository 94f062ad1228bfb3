package main

import (
	"testing"

	"werbench/internal/config"
	"werbench/internal/logging"
	"werbench/internal/services/whisperserver"
	"werbench/internal/services/whisperx"
	"werbench/internal/testsupport"
)

func TestNewTranscriberSelectsBackend(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	cfg.Engine.Backend = config.BackendWhisperX
	transcriber, err := newTranscriber(cfg)
	if err != nil {
		t.Fatalf("whisperx backend: %v", err)
	}
	if _, ok := transcriber.(*whisperx.Service); !ok {
		t.Fatalf("expected *whisperx.Service, got %T", transcriber)
	}

	cfg.Engine.Backend = config.BackendWhisperServer
	transcriber, err = newTranscriber(cfg)
	if err != nil {
		t.Fatalf("whisper-server backend: %v", err)
	}
	if _, ok := transcriber.(*whisperserver.Client); !ok {
		t.Fatalf("expected *whisperserver.Client, got %T", transcriber)
	}
}

func TestNewTranscriberRejectsUnknownBackend(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Engine.Backend = "carrier-pigeon"

	if _, err := newTranscriber(cfg); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}

func TestNewMetricDefaultsToCaseSensitive(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	rate, err := newMetric(cfg).ErrorRate("The cat", "the cat")
	if err != nil {
		t.Fatalf("ErrorRate: %v", err)
	}
	if rate != 0.5 {
		t.Errorf("rate = %v, want 0.5 (casing must count as an error by default)", rate)
	}
}

func TestNewMetricHonorsCaseFold(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Matching.CaseFold = true

	rate, err := newMetric(cfg).ErrorRate("The cat", "the cat")
	if err != nil {
		t.Fatalf("ErrorRate: %v", err)
	}
	if rate != 0 {
		t.Errorf("rate = %v, want 0 with case folding enabled", rate)
	}
}

func TestNewCorpusAppliesMatchingRules(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithExcludePattern("_SKIP_"))

	crp := newCorpus(cfg, logging.NewNop())
	if crp.AudioDir() != cfg.Paths.AudioDir {
		t.Errorf("audio dir = %q, want %q", crp.AudioDir(), cfg.Paths.AudioDir)
	}
	if crp.TranscriptDir() != cfg.Paths.TranscriptDir {
		t.Errorf("transcript dir = %q, want %q", crp.TranscriptDir(), cfg.Paths.TranscriptDir)
	}
}
