package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"anchor/internal/pointsync"
	"anchor/internal/subtitle"
)

func newPointSyncCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pointsync <target> <reference>",
		Short: "Apply a two-point linear correction from a reference subtitle",
		Long: `Lock one sync point near the start and one near the end of the target by
fuzzy-matching dialogue against the reference, then stretch the whole
timeline linearly between them. Suited to framerate mismatches and
constant offsets where full alignment is overkill.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			target, err := subtitle.LoadFile(args[0])
			if err != nil {
				return err
			}
			ref, err := subtitle.LoadFile(args[1])
			if err != nil {
				return err
			}

			res, err := pointsync.AutoSync(target, ref, logger)
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".synced.srt"
			}
			if err := subtitle.SaveFile(output, target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Metric", "Value"},
				[][]string{
					{"Slope", fmt.Sprintf("%.6f", res.Slope)},
					{"Offset (ms)", fmt.Sprintf("%.1f", res.OffsetMillis)},
					{"Start point", res.StartMatch.Text},
					{"End point", res.EndMatch.Text},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			printOK(out, fmt.Sprintf("wrote %s", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output subtitle path (default: <target>.synced.srt)")
	return cmd
}
