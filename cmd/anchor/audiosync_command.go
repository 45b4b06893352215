package main

import (
	"github.com/spf13/cobra"

	"anchor/internal/logging"
	"anchor/internal/media"
)

func newAudioSyncCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "audiosync <media> <subtitle>",
		Short: "Re-time a subtitle against the speech heard in a media file",
		Long: `Recognize the speech in a media file and shift every subtitle line onto
the recognized timeline. The subtitle's text is never changed, only its
timing. Lines with no confident speech match are interpolated from their
neighbors.`,
		Args: cobra.ExactArgs(2),
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

			report, err := s.AudioSync(cmd.Context(), args[0], args[1], output)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output subtitle path (default: <subtitle>.synced.srt)")
	return cmd
}

// probeDuration logs the container duration when ffprobe can read it. A
// probe failure is not fatal; recognition reports its own errors.
func probeDuration(ctx *commandContext, cmd *cobra.Command, mediaPath string) {
	logger, err := ctx.ensureLogger()
	if err != nil {
		return
	}
	seconds, err := media.Duration(cmd.Context(), mediaPath)
	if err != nil {
		logger.Debug("media probe failed", logging.Error(err))
		return
	}
	logger.Info("media probed",
		logging.String("source", mediaPath),
		logging.Float64("duration_seconds", seconds))
}
