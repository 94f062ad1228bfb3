// Package services defines shared utilities consumed by the scoring pipeline
// and the external tool integrations.
//
// It provides structured error markers plus the Wrap helper so failures from
// transcription engines, document extraction, and metric computation surface
// with a consistent shape. The pipeline treats every wrapped failure as fatal;
// the markers exist so the CLI can report what kind of collaborator broke,
// not to drive retries.
package services
