package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"anchor/internal/transcache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the transcript cache",
	}

	cacheCmd.AddCommand(newCachePruneCommand(ctx))
	return cacheCmd
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	var maxAge time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove cached transcripts older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !cfg.Recognition.CacheEnabled {
				fmt.Fprintln(out, "Transcript cache is disabled (set cache_enabled = true in config.toml)")
				return nil
			}

			store, err := transcache.Open(cfg.Paths.CacheDir)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Prune(cmd.Context(), maxAge)
			if err != nil {
				return err
			}
			if removed == 0 {
				fmt.Fprintln(out, "No cached transcripts pruned")
				return nil
			}
			fmt.Fprintf(out, "Pruned %d cached transcript(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().DurationVar(&maxAge, "max-age", 30*24*time.Hour, "Remove entries older than this")
	return cmd
}
