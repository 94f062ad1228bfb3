package main

import (
	"fmt"
	"log/slog"
	"time"

	"werbench/internal/config"
	"werbench/internal/corpus"
	"werbench/internal/services/whisperserver"
	"werbench/internal/services/whisperx"
	"werbench/internal/wer"
)

// newTranscriber builds the configured transcription backend.
func newTranscriber(cfg *config.Config) (corpus.Transcriber, error) {
	switch cfg.Engine.Backend {
	case config.BackendWhisperX:
		return whisperx.NewService(whisperx.Config{
			Model:       cfg.WhisperX.Model,
			CUDAEnabled: cfg.WhisperX.CUDAEnabled,
			Language:    cfg.Engine.Language,
			OutputDir:   cfg.WhisperX.CacheDir,
		}), nil
	case config.BackendWhisperServer:
		opts := []whisperserver.Option{
			whisperserver.WithLanguage(cfg.Engine.Language),
		}
		if cfg.WhisperServer.Model != "" {
			opts = append(opts, whisperserver.WithModel(cfg.WhisperServer.Model))
		}
		if cfg.WhisperServer.TimeoutSeconds > 0 {
			opts = append(opts, whisperserver.WithTimeout(time.Duration(cfg.WhisperServer.TimeoutSeconds)*time.Second))
		}
		return whisperserver.New(cfg.WhisperServer.URL, opts...), nil
	default:
		return nil, fmt.Errorf("unknown engine backend %q", cfg.Engine.Backend)
	}
}

// newMetric builds the scoring metric. Case folding is applied only when
// configured; by default casing differences count as errors.
func newMetric(cfg *config.Config) *wer.Calculator {
	if cfg.Matching.CaseFold {
		return wer.New(wer.WithFold())
	}
	return wer.New()
}

// newCorpus builds a corpus from the configured roots and matching rules.
func newCorpus(cfg *config.Config, logger *slog.Logger) *corpus.Corpus {
	rules := corpus.Rules{
		AudioExt:       cfg.Matching.AudioExt,
		TranscriptExt:  cfg.Matching.TranscriptExt,
		ExcludePattern: cfg.Matching.ExcludePattern,
	}
	return corpus.New(cfg.Paths.AudioDir, cfg.Paths.TranscriptDir, rules, logger)
}
