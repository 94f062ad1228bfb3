package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Record is one matched audio/transcript pair. It is a stateless leaf:
// every scoring call recomputes the transcription and the metric from
// scratch, so repeated calls are idempotent only to the extent the injected
// engine is deterministic.
type Record struct {
	audioPath      string
	transcriptPath string
}

// NewRecord pairs a resolved audio file with its reference transcript.
func NewRecord(audioPath, transcriptPath string) *Record {
	return &Record{audioPath: audioPath, transcriptPath: transcriptPath}
}

// AudioPath returns the resolved audio file path.
func (r *Record) AudioPath() string { return r.audioPath }

// TranscriptPath returns the resolved transcript document path.
func (r *Record) TranscriptPath() string { return r.transcriptPath }

// Name returns the audio file basename without its extension.
func (r *Record) Name() string {
	base := filepath.Base(r.audioPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TranscriptContent returns the reference text of the transcript document.
func (r *Record) TranscriptContent(extractor Extractor) (string, error) {
	return extractor.ExtractText(r.transcriptPath)
}

// Transcription runs the injected engine over the audio file. The engine is
// never stored on the record.
func (r *Record) Transcription(ctx context.Context, transcriber Transcriber) (string, error) {
	return transcriber.Transcribe(ctx, r.audioPath)
}

// ErrorRate computes the word error rate of the automatic transcription
// against the reference text. Neither text is normalized here; the metric
// sees both exactly as the collaborators produced them.
func (r *Record) ErrorRate(ctx context.Context, scoring Scoring) (float64, error) {
	if err := scoring.validate(); err != nil {
		return 0, err
	}
	hypothesis, err := r.Transcription(ctx, scoring.Transcriber)
	if err != nil {
		return 0, fmt.Errorf("record %s: transcribe: %w", r.Name(), err)
	}
	reference, err := r.TranscriptContent(scoring.Extractor)
	if err != nil {
		return 0, fmt.Errorf("record %s: extract reference: %w", r.Name(), err)
	}
	rate, err := scoring.Metric.ErrorRate(reference, hypothesis)
	if err != nil {
		return 0, fmt.Errorf("record %s: %w", r.Name(), err)
	}
	return rate, nil
}

// FormatResult returns the record's report line.
func (r *Record) FormatResult(ctx context.Context, scoring Scoring) (string, error) {
	rate, err := r.ErrorRate(ctx, scoring)
	if err != nil {
		return "", err
	}
	return FormatLine(r.Name(), rate), nil
}

// FormatLine renders a report line for the given record name and error rate.
// The percentage always carries exactly two decimal places.
func FormatLine(name string, rate float64) string {
	return fmt.Sprintf("%s - Word Error Rate (WER): %.2f%%", name, rate*100)
}
