package wer_test

import (
	"errors"
	"math"
	"testing"

	"werbench/internal/services"
	"werbench/internal/wer"
)

func TestErrorRate(t *testing.T) {
	tests := []struct {
		name       string
		reference  string
		hypothesis string
		want       float64
	}{
		{"identical", "the cat sat", "the cat sat", 0},
		{"one substitution", "the cat sat", "the dog sat", 1.0 / 3.0},
		{"one deletion", "the cat sat", "the cat", 1.0 / 3.0},
		{"one insertion", "the cat sat", "the big cat sat", 1.0 / 3.0},
		{"everything wrong", "a b c", "x y z", 1},
		{"case counts as error", "The cat", "the cat", 0.5},
		{"clamped at one", "hi", "completely different and much longer", 1},
		{"both empty", "", "", 0},
		{"whitespace only reference and hypothesis", "   ", "\n\t", 0},
	}

	calc := wer.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ErrorRate(tt.reference, tt.hypothesis)
			if err != nil {
				t.Fatalf("ErrorRate: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("ErrorRate(%q, %q) = %v, want %v", tt.reference, tt.hypothesis, got, tt.want)
			}
		})
	}
}

func TestErrorRateEmptyReference(t *testing.T) {
	calc := wer.New()
	_, err := calc.ErrorRate("", "something was said")
	if err == nil {
		t.Fatal("expected error for empty reference with non-empty hypothesis")
	}
	if !errors.Is(err, services.ErrMetric) {
		t.Fatalf("expected metric marker, got %v", err)
	}
}

func TestErrorRateWithFold(t *testing.T) {
	calc := wer.New(wer.WithFold())
	got, err := calc.ErrorRate("The Cat", "the cat")
	if err != nil {
		t.Fatalf("ErrorRate: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected folded comparison to score 0, got %v", got)
	}
}

func TestCharacterErrorRate(t *testing.T) {
	got, err := wer.CharacterErrorRate("abcd", "abce")
	if err != nil {
		t.Fatalf("CharacterErrorRate: %v", err)
	}
	if math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("expected 0.25, got %v", got)
	}

	if _, err := wer.CharacterErrorRate("", "abc"); err == nil {
		t.Fatal("expected error for empty reference")
	}

	got, err = wer.CharacterErrorRate("", "")
	if err != nil || got != 0 {
		t.Fatalf("expected 0 for two empty texts, got %v (%v)", got, err)
	}
}
