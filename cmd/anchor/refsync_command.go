package main

import (
	"github.com/spf13/cobra"
)

func newRefSyncCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "refsync <target> <reference>",
		Short: "Re-time a subtitle against an already-synced reference subtitle",
		Long: `Align a subtitle to a reference subtitle that is known to be in sync,
for example one in another language from the same release. The reference's
line timings stand in for recognized speech, so no media file is needed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := ctx.newSyncer()
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := s.RefSync(cmd.Context(), args[0], args[1], output)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output subtitle path (default: <target>.synced.srt)")
	return cmd
}
