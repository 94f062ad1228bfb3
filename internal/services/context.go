package services

import "context"

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	recordKey contextKey = "record"
)

// WithRunID stamps the pipeline run identifier onto the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext extracts the run identifier stamped by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok && id != ""
}

// WithRecord stamps the record name currently being scored onto the context.
func WithRecord(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, recordKey, name)
}

// RecordFromContext extracts the record name stamped by WithRecord.
func RecordFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	name, ok := ctx.Value(recordKey).(string)
	return name, ok && name != ""
}
