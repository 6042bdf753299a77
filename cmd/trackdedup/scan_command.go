package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"trackdedup/internal/dedup"
	"trackdedup/internal/media"
	"trackdedup/internal/organizer"
	"trackdedup/internal/report"
	"trackdedup/internal/store"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var (
		moveFiles bool
		dryRun    bool
		csvPath   string
		workers   int
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "scan <dir> [dir...]",
		Short: "Scan directories for duplicate audio files",
		Long: `Scan walks the given directories, extracts metadata from every supported
audio file (.mp3, .wav, .flac), and compares every pair of files for
duplicate recordings. Matching is driven by normalized filenames and
version annotations; the lower-quality copy of each confirmed duplicate
can optionally be moved aside.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensure()
			if err != nil {
				return err
			}
			if workers == 0 {
				workers = cfg.Scan.Workers
			}
			startedAt := time.Now()
			out := cmd.OutOrStdout()

			paths, err := media.CollectPaths(args, logger)
			if err != nil {
				return err
			}
			logger.Info("collected audio files", "count", len(paths), "roots", len(args))

			extractProgress, extractDone := newProgress(int64(len(paths)), "extracting metadata")
			extractor := media.NewExtractor(logger, workers)
			files := extractor.ExtractAll(paths, extractProgress)
			extractDone()

			scanProgress, scanDone := newProgress(dedup.TotalPairs(len(files)), "comparing pairs")
			results := dedup.FindAll(files, dedup.Options{
				Workers:  workers,
				Progress: scanProgress,
				Logger:   logger,
			})
			scanDone()

			logger.Info("scan complete",
				"files_scanned", results.TotalFilesScanned,
				"pairs", dedup.TotalPairs(len(files)),
				"matches", len(results.Matches),
				"elapsed", time.Since(startedAt).Round(time.Millisecond),
			)
			printMatches(out, results)

			if csvPath == "" && len(results.Matches) > 0 {
				csvPath = filepath.Join(cfg.Paths.ReportDir,
					fmt.Sprintf("duplicates-%s.csv", startedAt.Format("20060102-150405")))
			}
			if csvPath != "" && len(results.Matches) > 0 {
				if err := report.WriteDuplicates(csvPath, results); err != nil {
					return err
				}
				fmt.Fprintf(out, "Report written to %s\n", csvPath)
			}

			movedPaths := map[string]bool{}
			if moveFiles && len(results.Matches) > 0 {
				org := organizer.New(cfg.Paths.DuplicatesDir, dryRun, logger)
				moved, err := org.MoveDuplicates(results.Matches)
				if err != nil {
					return err
				}
				for _, m := range moved {
					movedPaths[m.Source] = true
				}
				if dryRun {
					fmt.Fprintf(out, "Dry run: %d file(s) would be moved to %s\n", len(moved), cfg.Paths.DuplicatesDir)
				} else {
					fmt.Fprintf(out, "Moved %d file(s) to %s\n", len(moved), cfg.Paths.DuplicatesDir)
				}
			}

			if cfg.Scan.KeepHistory && !noHistory {
				st, err := store.Open(cfg.Paths.DataDir)
				if err != nil {
					return err
				}
				defer st.Close()
				id, err := st.RecordScan(cmd.Context(), startedAt, args, results, movedPaths)
				if err != nil {
					return err
				}
				logger.Info("scan recorded", "scan_id", id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&moveFiles, "move", false, "Move lower-quality duplicates to the duplicates directory")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "With --move, report planned moves without touching files")
	cmd.Flags().StringVarP(&csvPath, "csv", "o", "", "CSV report path (defaults to the report directory)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker count (0 uses the configured value, then all CPUs)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this run in the history database")

	return cmd
}

func printMatches(out io.Writer, results dedup.Results) {
	if len(results.Matches) == 0 {
		fmt.Fprintf(out, "No duplicates found across %d file(s)\n", results.TotalFilesScanned)
		return
	}

	rows := make([][]string, 0, len(results.Matches))
	for _, match := range results.Matches {
		rows = append(rows, []string{
			match.HigherQuality.FileName,
			bitrateCell(match.HigherQuality.BitrateKbps),
			match.LowerQuality.FileName,
			bitrateCell(match.LowerQuality.BitrateKbps),
			match.QualityDifference,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Keep", "kbps", "Remove", "kbps", "Difference"},
		rows, 2, 4))
	fmt.Fprintf(out, "%d duplicate match(es) across %d file(s)\n",
		len(results.Matches), results.TotalFilesScanned)
}

func bitrateCell(kbps int) string {
	if kbps <= 0 {
		return "-"
	}
	return strconv.Itoa(kbps)
}
