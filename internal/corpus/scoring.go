package corpus

import (
	"context"
	"errors"
)

// Transcriber produces an automatic transcription for an audio file. The
// engine may block for the full duration of the model run.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Extractor produces the reference text of a transcript document.
type Extractor interface {
	ExtractText(path string) (string, error)
}

// Metric scores a hypothesis against a reference text, returning a rate in
// [0, 1].
type Metric interface {
	ErrorRate(reference, hypothesis string) (float64, error)
}

// Scoring bundles the collaborators a record needs to compute its score.
// Records never store these; the bundle is passed at call time.
type Scoring struct {
	Transcriber Transcriber
	Extractor   Extractor
	Metric      Metric
}

func (s Scoring) validate() error {
	if s.Transcriber == nil {
		return errors.New("scoring: transcriber is required")
	}
	if s.Extractor == nil {
		return errors.New("scoring: extractor is required")
	}
	if s.Metric == nil {
		return errors.New("scoring: metric is required")
	}
	return nil
}
