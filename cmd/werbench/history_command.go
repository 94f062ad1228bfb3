package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"werbench/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded runs, or the per-record results of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("history is disabled; enable [history] in %s", ctx.configPath())
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				results, err := store.RunResults(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					rows = append(rows, []string{
						result.Session,
						result.Participant,
						result.Record,
						fmt.Sprintf("%.2f%%", result.WER*100),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Session", "Participant", "Record", "WER"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
				))
				return nil
			}

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.CreatedAt.Format("2006-01-02 15:04:05"),
					run.Engine,
					fmt.Sprintf("%d", run.Records),
					fmt.Sprintf("%.2f%%", run.MeanWER*100),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Created", "Engine", "Records", "Mean WER"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")

	return cmd
}
