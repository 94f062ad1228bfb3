// Package wer implements the word-error-rate metric used to score automatic
// transcriptions against reference transcripts.
//
// WER is the word-level edit distance between hypothesis and reference
// divided by the reference word count. The calculator applies no text
// normalization unless explicitly configured, so casing and punctuation
// differences count as errors, matching how raw engine output is usually
// scored. A character-level rate built on Levenshtein distance is
// available as a diagnostic companion.
package wer
