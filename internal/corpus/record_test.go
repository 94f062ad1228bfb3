package corpus_test

import (
	"context"
	"testing"

	"werbench/internal/corpus"
)

type fixedTranscriber struct{ text string }

func (f fixedTranscriber) Transcribe(context.Context, string) (string, error) {
	return f.text, nil
}

type fixedExtractor struct{ text string }

func (f fixedExtractor) ExtractText(string) (string, error) {
	return f.text, nil
}

type fixedMetric struct{ rate float64 }

func (f fixedMetric) ErrorRate(string, string) (float64, error) {
	return f.rate, nil
}

func TestRecordName(t *testing.T) {
	tests := []struct {
		audioPath string
		want      string
	}{
		{"/data/audios/S1/P1/item1.wav", "item1"},
		{"/data/audios/S1/P1/meal one.wav", "meal one"},
		{"/data/audios/S1/P1/noext", "noext"},
	}
	for _, tt := range tests {
		r := corpus.NewRecord(tt.audioPath, "/ignored.docx")
		if got := r.Name(); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.audioPath, got, tt.want)
		}
	}
}

func TestFormatResultTwoDecimals(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0, "item1 - Word Error Rate (WER): 0.00%"},
		{0.1234, "item1 - Word Error Rate (WER): 12.34%"},
		{0.123449, "item1 - Word Error Rate (WER): 12.34%"},
		{1, "item1 - Word Error Rate (WER): 100.00%"},
	}
	for _, tt := range tests {
		r := corpus.NewRecord("/a/item1.wav", "/t/item1.docx")
		scoring := corpus.Scoring{
			Transcriber: fixedTranscriber{text: "hyp"},
			Extractor:   fixedExtractor{text: "ref"},
			Metric:      fixedMetric{rate: tt.rate},
		}
		got, err := r.FormatResult(context.Background(), scoring)
		if err != nil {
			t.Fatalf("FormatResult: %v", err)
		}
		if got != tt.want {
			t.Errorf("FormatResult(rate=%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestRecordErrorRateRejectsIncompleteScoring(t *testing.T) {
	r := corpus.NewRecord("/a/item1.wav", "/t/item1.docx")
	if _, err := r.ErrorRate(context.Background(), corpus.Scoring{}); err == nil {
		t.Fatal("expected error for missing collaborators")
	}
}
