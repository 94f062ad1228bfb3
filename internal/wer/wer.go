package wer

import (
	"strings"

	"github.com/antzucaro/matchr"
	"golang.org/x/text/cases"

	"werbench/internal/services"
)

// Option is a functional option for configuring a Calculator.
type Option func(*Calculator)

// WithFold case-folds both texts before tokenization. Off by default: the
// stock metric compares exactly what the collaborators hand it.
func WithFold() Option {
	return func(c *Calculator) {
		c.fold = true
	}
}

// Calculator computes word error rates. The zero-option calculator performs
// no normalization. Safe for concurrent use; a Calculator is read-only after
// construction.
type Calculator struct {
	fold   bool
	folder cases.Caser
}

// New returns a Calculator configured with the supplied options.
func New(opts ...Option) *Calculator {
	c := &Calculator{folder: cases.Fold()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ErrorRate computes the word error rate of hypothesis against reference:
// word-level edit distance (insertions, deletions, substitutions at unit
// cost) divided by the reference word count, clamped to [0, 1].
//
// An empty reference with a non-empty hypothesis cannot be scored and returns
// an error. Two empty texts score 0.
func (c *Calculator) ErrorRate(reference, hypothesis string) (float64, error) {
	if c.fold {
		reference = c.folder.String(reference)
		hypothesis = c.folder.String(hypothesis)
	}

	ref := strings.Fields(reference)
	hyp := strings.Fields(hypothesis)

	if len(ref) == 0 {
		if len(hyp) == 0 {
			return 0, nil
		}
		return 0, services.Wrap(services.ErrMetric, "wer", "score", "reference text has no words", nil)
	}

	dist := editDistance(ref, hyp)
	rate := float64(dist) / float64(len(ref))
	if rate > 1 {
		rate = 1
	}
	return rate, nil
}

// CharacterErrorRate computes the Levenshtein distance between the two texts
// divided by the reference length in runes, clamped to [0, 1]. Used for the
// diagnostic column in the CLI summary; the canonical report only carries WER.
func CharacterErrorRate(reference, hypothesis string) (float64, error) {
	refLen := len([]rune(reference))
	if refLen == 0 {
		if len([]rune(hypothesis)) == 0 {
			return 0, nil
		}
		return 0, services.Wrap(services.ErrMetric, "cer", "score", "reference text is empty", nil)
	}
	dist := matchr.Levenshtein(reference, hypothesis)
	rate := float64(dist) / float64(refLen)
	if rate > 1 {
		rate = 1
	}
	return rate, nil
}

// editDistance computes the word-level Levenshtein distance using two rolling
// rows.
func editDistance(ref, hyp []string) int {
	prev := make([]int, len(hyp)+1)
	curr := make([]int, len(hyp)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ref); i++ {
		curr[0] = i
		for j := 1; j <= len(hyp); j++ {
			if ref[i-1] == hyp[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j-1], min(prev[j], curr[j-1]))
		}
		prev, curr = curr, prev
	}
	return prev[len(hyp)]
}
