package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// WriteLines persists report lines one per line to path, creating parent
// directories as needed. A sidecar lock file serializes concurrent werbench
// invocations targeting the same report; the write itself is a single
// truncate-and-replace, so readers never observe a partially written report
// from a completed call.
func WriteLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure report directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock report %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("report %s is locked by another werbench run", path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// Stats summarizes a run's error rates.
type Stats struct {
	Records int
	MeanWER float64
	MinWER  float64
	MaxWER  float64
}

// Summarize computes aggregate statistics over per-record error rates.
// An empty input yields the zero Stats.
func Summarize(rates []float64) Stats {
	if len(rates) == 0 {
		return Stats{}
	}
	stats := Stats{
		Records: len(rates),
		MinWER:  rates[0],
		MaxWER:  rates[0],
	}
	var sum float64
	for _, rate := range rates {
		sum += rate
		if rate < stats.MinWER {
			stats.MinWER = rate
		}
		if rate > stats.MaxWER {
			stats.MaxWER = rate
		}
	}
	stats.MeanWER = sum / float64(len(rates))
	return stats
}
