package corpus

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"

	"werbench/internal/logging"
	"werbench/internal/report"
	"werbench/internal/services"
)

// Corpus is the top-level aggregator: it aligns the audio tree with the
// transcript tree and drives scoring across every matched record.
type Corpus struct {
	audioDir      string
	transcriptDir string
	rules         Rules
	logger        *slog.Logger

	sessions []*Session
	loaded   bool
}

// New constructs a corpus over the two root directories. Discovery is
// deferred until Sessions is first called; construction never touches the
// filesystem. A nil logger disables logging.
func New(audioDir, transcriptDir string, rules Rules, logger *slog.Logger) *Corpus {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Corpus{
		audioDir:      audioDir,
		transcriptDir: transcriptDir,
		rules:         rules,
		logger:        logger.With(logging.String(logging.FieldComponent, "corpus")),
	}
}

// AudioDir returns the audio root directory.
func (c *Corpus) AudioDir() string { return c.audioDir }

// TranscriptDir returns the transcript root directory.
func (c *Corpus) TranscriptDir() string { return c.transcriptDir }

// Sessions returns the matched sessions, sorted by name. Session names must
// exist as subdirectories under both roots; one-sided names are silently
// dropped and hidden directories are ignored. The discovery runs once and the
// result is cached, including an empty one; zero matches is a valid, silent
// outcome.
func (c *Corpus) Sessions() ([]*Session, error) {
	if c.loaded {
		return c.sessions, nil
	}

	audioNames, err := listSubdirNames(c.audioDir)
	if err != nil {
		return nil, err
	}
	transcriptNames, err := listSubdirNames(c.transcriptDir)
	if err != nil {
		return nil, err
	}

	common := intersect(audioNames, transcriptNames)
	sessions := make([]*Session, 0, len(common))
	for _, name := range common {
		sessions = append(sessions, NewSession(
			filepath.Join(c.audioDir, name),
			filepath.Join(c.transcriptDir, name),
			c.rules,
		))
	}

	c.sessions = sessions
	c.loaded = true
	return c.sessions, nil
}

// Result captures one record's score together with the texts that produced
// it, so callers can derive secondary diagnostics without re-running the
// engine.
type Result struct {
	Session     string
	Participant string
	Record      string
	WER         float64
	Reference   string
	Hypothesis  string
}

// Line renders the result in canonical report form.
func (r Result) Line() string {
	return FormatLine(r.Record, r.WER)
}

// Score walks every matched record in nested session/participant order and
// scores it with the supplied collaborators. The walk is strictly sequential;
// total latency is the sum of all engine calls. Any failure aborts the whole
// run and propagates; there is no partial-result salvage.
func (c *Corpus) Score(ctx context.Context, scoring Scoring) ([]Result, error) {
	if err := scoring.validate(); err != nil {
		return nil, err
	}

	sessions, err := c.Sessions()
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, session := range sessions {
		participants, err := session.Participants()
		if err != nil {
			return nil, err
		}
		for _, participant := range participants {
			records, err := participant.Records()
			if err != nil {
				return nil, err
			}
			for _, record := range records {
				recCtx := services.WithRecord(ctx, record.Name())
				logger := logging.WithContext(recCtx, c.logger)
				logger.Debug("scoring record",
					logging.String(logging.FieldSession, session.Name()),
					logging.String(logging.FieldParticipant, participant.Name()),
				)

				hypothesis, err := record.Transcription(recCtx, scoring.Transcriber)
				if err != nil {
					return nil, services.Wrap(services.ErrExternalTool, "corpus", "transcribe", record.AudioPath(), err)
				}
				reference, err := record.TranscriptContent(scoring.Extractor)
				if err != nil {
					return nil, services.Wrap(services.ErrExternalTool, "corpus", "extract reference", record.TranscriptPath(), err)
				}
				rate, err := scoring.Metric.ErrorRate(reference, hypothesis)
				if err != nil {
					return nil, services.Wrap(services.ErrMetric, "corpus", "score", record.Name(), err)
				}

				logger.Info("record scored", logging.Float64("wer", rate))
				results = append(results, Result{
					Session:     session.Name(),
					Participant: participant.Name(),
					Record:      record.Name(),
					WER:         rate,
					Reference:   reference,
					Hypothesis:  hypothesis,
				})
			}
		}
	}
	return results, nil
}

// ProcessOptions controls report assembly.
type ProcessOptions struct {
	// OutputPath overrides the report destination. Empty selects an
	// output.txt sibling of the audio root.
	OutputPath string
	// SkipWrite collects and returns the report lines without persisting
	// them.
	SkipWrite bool
}

// Process scores the whole corpus, sorts the formatted report lines
// lexicographically, persists them one per line unless SkipWrite is set, and
// returns the sorted lines either way. Nothing is written when any record
// fails: the report file only ever reflects a complete run.
func (c *Corpus) Process(ctx context.Context, scoring Scoring, opts ProcessOptions) ([]string, error) {
	results, err := c.Score(ctx, scoring)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(results))
	for _, result := range results {
		lines = append(lines, result.Line())
	}
	sort.Strings(lines)

	if !opts.SkipWrite {
		path := opts.OutputPath
		if path == "" {
			path = c.DefaultOutputPath()
		}
		if err := report.WriteLines(path, lines); err != nil {
			return nil, err
		}
		c.logger.Info("report written",
			logging.String("path", path),
			logging.Int("records", len(lines)),
		)
	}
	return lines, nil
}

// DefaultOutputPath returns the report destination used when none is
// configured: an output.txt next to the audio root.
func (c *Corpus) DefaultOutputPath() string {
	return filepath.Join(filepath.Dir(c.audioDir), "output.txt")
}
