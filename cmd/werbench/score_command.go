package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"werbench/internal/corpus"
	"werbench/internal/docx"
	"werbench/internal/history"
	"werbench/internal/logging"
	"werbench/internal/report"
	"werbench/internal/services"
	"werbench/internal/wer"
)

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var (
		audioDir      string
		transcriptDir string
		outputPath    string
		noWrite       bool
		quiet         bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Transcribe every matched record and write the WER report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.applyTreeFlags(audioDir, transcriptDir)
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			logger := ctx.loggerFor()
			runID := uuid.NewString()
			runCtx := services.WithRunID(cmd.Context(), runID)

			transcriber, err := newTranscriber(cfg)
			if err != nil {
				return err
			}
			scoring := corpus.Scoring{
				Transcriber: transcriber,
				Extractor:   docx.NewExtractor(),
				Metric:      newMetric(cfg),
			}

			crp := newCorpus(cfg, logger)
			logger.Info("scoring run started",
				logging.String(logging.FieldRunID, runID),
				logging.String("audio_dir", crp.AudioDir()),
				logging.String("transcript_dir", crp.TranscriptDir()),
				logging.String("engine", cfg.Engine.Backend),
				logging.Bool("case_fold", cfg.Matching.CaseFold),
			)

			started := time.Now()
			results, err := crp.Score(runCtx, scoring)
			if err != nil {
				logger.Error("scoring run failed",
					logging.String(logging.FieldRunID, runID),
					logging.Error(err),
				)
				return err
			}

			lines := make([]string, 0, len(results))
			rates := make([]float64, 0, len(results))
			for _, result := range results {
				lines = append(lines, result.Line())
				rates = append(rates, result.WER)
			}
			sort.Strings(lines)

			reportPath := ""
			if !noWrite {
				reportPath = outputPath
				if reportPath == "" {
					reportPath = cfg.Paths.OutputFile
				}
				if reportPath == "" {
					reportPath = crp.DefaultOutputPath()
				}
				if err := report.WriteLines(reportPath, lines); err != nil {
					return err
				}
			}

			stats := report.Summarize(rates)
			if cfg.History.Enabled {
				if err := recordHistory(cmd, cfg.History.Path, history.Run{
					ID:            runID,
					CreatedAt:     started,
					AudioDir:      crp.AudioDir(),
					TranscriptDir: crp.TranscriptDir(),
					Engine:        cfg.Engine.Backend,
					Records:       stats.Records,
					MeanWER:       stats.MeanWER,
				}, results); err != nil {
					return err
				}
			}

			if !quiet {
				printSummary(cmd, results, stats, reportPath, time.Since(started))
			}
			logger.Info("scoring run finished",
				logging.String(logging.FieldRunID, runID),
				logging.Int("records", stats.Records),
				logging.Float64("mean_wer", stats.MeanWER),
				logging.Duration("elapsed", time.Since(started)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&audioDir, "audio-dir", "", "Audio tree root (overrides configuration)")
	cmd.Flags().StringVar(&transcriptDir, "transcript-dir", "", "Transcript tree root (overrides configuration)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file path (default: output.txt beside the audio root)")
	cmd.Flags().BoolVar(&noWrite, "no-write", false, "Print results without writing the report file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the summary table")

	return cmd
}

func recordHistory(cmd *cobra.Command, path string, run history.Run, results []corpus.Result) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	stored := make([]history.Result, 0, len(results))
	for _, result := range results {
		stored = append(stored, history.Result{
			Session:     result.Session,
			Participant: result.Participant,
			Record:      result.Record,
			WER:         result.WER,
		})
	}
	return store.RecordRun(cmd.Context(), run, stored)
}

func printSummary(cmd *cobra.Command, results []corpus.Result, stats report.Stats, reportPath string, elapsed time.Duration) {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		cer := "-"
		if rate, err := wer.CharacterErrorRate(result.Reference, result.Hypothesis); err == nil {
			cer = fmt.Sprintf("%.2f%%", rate*100)
		}
		rows = append(rows, []string{
			result.Session,
			result.Participant,
			result.Record,
			fmt.Sprintf("%.2f%%", result.WER*100),
			cer,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		for col := 0; col < 3; col++ {
			if rows[i][col] != rows[j][col] {
				return rows[i][col] < rows[j][col]
			}
		}
		return false
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"Session", "Participant", "Record", "WER", "CER"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	))
	fmt.Fprintf(out, "\n%d records scored in %s (mean WER %.2f%%, min %.2f%%, max %.2f%%)\n",
		stats.Records, elapsed.Round(time.Millisecond),
		stats.MeanWER*100, stats.MinWER*100, stats.MaxWER*100)
	if reportPath != "" {
		fmt.Fprintf(out, "Report written to %s\n", reportPath)
	}
}
