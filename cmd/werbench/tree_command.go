package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"werbench/internal/logging"
)

func newTreeCommand(ctx *commandContext) *cobra.Command {
	var (
		audioDir      string
		transcriptDir string
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the matched session/participant/record hierarchy without transcribing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.applyTreeFlags(audioDir, transcriptDir)
			if err != nil {
				return err
			}

			crp := newCorpus(cfg, logging.NewNop())
			sessions, err := crp.Sessions()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			records := 0
			for _, session := range sessions {
				fmt.Fprintln(out, session.Name())
				participants, err := session.Participants()
				if err != nil {
					return err
				}
				for _, participant := range participants {
					fmt.Fprintf(out, "  %s\n", participant.Name())
					recs, err := participant.Records()
					if err != nil {
						return err
					}
					for _, record := range recs {
						fmt.Fprintf(out, "    %s\n", record.Name())
						records++
					}
				}
			}
			fmt.Fprintf(out, "\n%d sessions, %d records matched\n", len(sessions), records)
			return nil
		},
	}

	cmd.Flags().StringVar(&audioDir, "audio-dir", "", "Audio tree root (overrides configuration)")
	cmd.Flags().StringVar(&transcriptDir, "transcript-dir", "", "Transcript tree root (overrides configuration)")

	return cmd
}
