package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"trackdedup/internal/store"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [scan-id]",
		Short: "Show past scans and their recorded matches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.ensure()
			if err != nil {
				return err
			}
			st, err := store.Open(cfg.Paths.DataDir)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				return printScanMatches(cmd, st, args[0])
			}

			scans, err := st.RecentScans(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(scans) == 0 {
				fmt.Fprintln(out, "No recorded scans")
				return nil
			}

			rows := make([][]string, 0, len(scans))
			for _, scan := range scans {
				rows = append(rows, []string{
					scan.ID,
					scan.StartedAt.Local().Format(time.DateTime),
					strings.Join(scan.Roots, ", "),
					strconv.Itoa(scan.FilesScanned),
					strconv.Itoa(scan.MatchCount),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Scan", "Started", "Roots", "Files", "Matches"},
				rows, 4, 5))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of scans to list")

	return cmd
}

func printScanMatches(cmd *cobra.Command, st *store.Store, scanID string) error {
	matches, err := st.ScanMatches(cmd.Context(), scanID)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintf(out, "No matches recorded for scan %s\n", scanID)
		return nil
	}

	rows := make([][]string, 0, len(matches))
	for _, match := range matches {
		moved := ""
		if match.Moved {
			moved = "yes"
		}
		rows = append(rows, []string{
			filepath.Base(match.HigherPath),
			filepath.Base(match.LowerPath),
			match.QualityDifference,
			moved,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Keep", "Remove", "Difference", "Moved"}, rows))
	return nil
}
