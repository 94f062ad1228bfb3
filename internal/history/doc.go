// Package history archives completed scoring runs in a local SQLite database.
//
// The archive is append-only from the pipeline's perspective: each scoring
// run that opts in records one run row plus its per-record results.
// It exists for comparing WER across model or configuration changes, not for
// resuming interrupted runs; the pipeline itself never reads it.
package history
