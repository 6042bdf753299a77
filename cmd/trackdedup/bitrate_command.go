package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"trackdedup/internal/bitrate"
	"trackdedup/internal/media"
	"trackdedup/internal/report"
)

func newBitrateCommand(ctx *commandContext) *cobra.Command {
	var (
		csvPath string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "bitrate <dir> [dir...]",
		Short: "Summarize bitrate quality across a library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensure()
			if err != nil {
				return err
			}
			if workers == 0 {
				workers = cfg.Scan.Workers
			}
			out := cmd.OutOrStdout()

			paths, err := media.CollectPaths(args, logger)
			if err != nil {
				return err
			}

			progress, done := newProgress(int64(len(paths)), "extracting metadata")
			files := media.NewExtractor(logger, workers).ExtractAll(paths, progress)
			done()

			stats := bitrate.Analyze(files)
			if stats.FileCount == 0 {
				fmt.Fprintln(out, "No supported audio files found")
				return nil
			}

			rows := make([][]string, 0, len(bitrate.Categories()))
			for _, category := range bitrate.Categories() {
				count := stats.Distribution[category]
				if count == 0 {
					continue
				}
				percent := float64(count) / float64(stats.RatedCount) * 100
				rows = append(rows, []string{
					category.String(),
					strconv.Itoa(count),
					fmt.Sprintf("%.1f%%", percent),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Category", "Files", "Share"}, rows, 2, 3))

			fmt.Fprintf(out, "Files analyzed: %d (%d with a known bitrate)\n", stats.FileCount, stats.RatedCount)
			if stats.RatedCount > 0 {
				fmt.Fprintf(out, "Average bitrate: %.0f kbps (min %d, max %d)\n",
					stats.AverageKbps, stats.MinKbps, stats.MaxKbps)
			}

			if csvPath != "" {
				if err := report.WriteBitrateStats(csvPath, stats); err != nil {
					return err
				}
				fmt.Fprintf(out, "Report written to %s\n", csvPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&csvPath, "csv", "o", "", "Write the bitrate summary to a CSV file")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker count (0 uses the configured value, then all CPUs)")

	return cmd
}
