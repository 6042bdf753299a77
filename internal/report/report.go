// Package report writes CSV reports for duplicate scans and bitrate
// analysis. The core engine produces semantic strings only; this package
// owns their on-disk tabular layout.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"trackdedup/internal/bitrate"
	"trackdedup/internal/dedup"
)

// WriteDuplicates writes one row per confirmed duplicate match.
func WriteDuplicates(path string, results dedup.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"Keep", "Keep Bitrate (kbps)", "Keep Size (bytes)",
		"Remove", "Remove Bitrate (kbps)", "Remove Size (bytes)",
		"Match Reason", "Quality Difference",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, match := range results.Matches {
		row := []string{
			match.HigherQuality.Path,
			bitrateField(match.HigherQuality.BitrateKbps),
			strconv.FormatInt(match.HigherQuality.SizeBytes, 10),
			match.LowerQuality.Path,
			bitrateField(match.LowerQuality.BitrateKbps),
			strconv.FormatInt(match.LowerQuality.SizeBytes, 10),
			match.MatchReason,
			match.QualityDifference,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteBitrateStats writes the category distribution followed by a summary
// block.
func WriteBitrateStats(path string, stats bitrate.Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Category", "File Count", "Percentage"}); err != nil {
		return err
	}

	for _, category := range bitrate.Categories() {
		count := stats.Distribution[category]
		if count == 0 {
			continue
		}
		percentage := 0.0
		if stats.RatedCount > 0 {
			percentage = float64(count) / float64(stats.RatedCount) * 100
		}
		row := []string{
			category.String(),
			strconv.Itoa(count),
			fmt.Sprintf("%.1f%%", percentage),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	summary := [][]string{
		{"", "", ""},
		{"Total Files", strconv.Itoa(stats.FileCount), ""},
		{"Files With Bitrate", strconv.Itoa(stats.RatedCount), ""},
		{"Average Bitrate", fmt.Sprintf("%.1f kbps", stats.AverageKbps), ""},
		{"Min Bitrate", fmt.Sprintf("%d kbps", stats.MinKbps), ""},
		{"Max Bitrate", fmt.Sprintf("%d kbps", stats.MaxKbps), ""},
	}
	for _, row := range summary {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func bitrateField(kbps int) string {
	if kbps <= 0 {
		return "unknown"
	}
	return strconv.Itoa(kbps)
}
