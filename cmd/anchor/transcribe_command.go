package main

import (
	"github.com/spf13/cobra"

	"anchor/internal/media"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "transcribe <media>",
		Short: "Generate a subtitle from scratch by recognizing the media's speech",
		Long: `Recognize the media file's speech and write an SRT. Suspicious stretches
of the transcript are re-recognized with wider context and escalating
decode settings, and a rendition is only accepted when it scores clearly
better than what it replaces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := media.CheckTools(); err != nil {
				return err
			}
			s, cleanup, err := ctx.newSyncer()
			if err != nil {
				return err
			}
			defer cleanup()

			probeDuration(ctx, cmd, args[0])

			report, err := s.Transcribe(cmd.Context(), args[0], output)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output subtitle path (default: <media>.ai.srt)")
	return cmd
}
