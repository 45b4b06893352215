package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"anchor/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = config.DefaultConfigPath()
			}
			if err := config.WriteSample(target); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to point [recognition] at your whisper install before running anchor.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath())
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := [][]string{
				{"config path", ctx.configPath()},
				{"cache dir", cfg.Paths.CacheDir},
				{"log dir", cfg.Paths.LogDir},
				{"work dir", cfg.Paths.WorkDir},
				{"recognition command", cfg.Recognition.Command},
				{"recognition model", cfg.Recognition.Model},
				{"recognition device", cfg.Recognition.Device},
				{"recognition language", orAuto(cfg.Recognition.Language)},
				{"transcript cache", yesNo(cfg.Recognition.CacheEnabled)},
				{"scene gap (s)", formatFloat(cfg.Align.SceneGapSeconds)},
				{"outlier threshold (s)", formatFloat(cfg.Align.OutlierThresholdSeconds)},
				{"drift window", strconv.Itoa(cfg.Align.DriftWindow)},
				{"repair", yesNo(cfg.Repair.Enabled)},
				{"repair denoise", yesNo(cfg.Repair.Denoise)},
				{"log format", cfg.Logging.Format},
				{"log level", cfg.Logging.Level},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Setting", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func orAuto(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(auto-detect)"
	}
	return value
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
