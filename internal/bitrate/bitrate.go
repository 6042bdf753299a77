// Package bitrate buckets audio files by bitrate and computes distribution
// statistics across a collection.
package bitrate

import "trackdedup/internal/media"

// Category is a coarse quality bucket derived from a file's bitrate.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryLow
	CategoryStandard
	CategoryHigh
	CategoryLossless
	CategoryHighRes
)

// CategoryFor maps a bitrate in kbps to its bucket. The high bucket extends
// to 400 kbps to absorb VBR variation above nominal 320.
func CategoryFor(kbps int) Category {
	switch {
	case kbps >= 1500:
		return CategoryHighRes
	case kbps >= 700:
		return CategoryLossless
	case kbps >= 256 && kbps <= 400:
		return CategoryHigh
	case kbps >= 160 && kbps <= 255:
		return CategoryStandard
	case kbps >= 64 && kbps <= 159:
		return CategoryLow
	default:
		return CategoryUnknown
	}
}

func (c Category) String() string {
	switch c {
	case CategoryHighRes:
		return "High-Resolution (1500+ kbps)"
	case CategoryLossless:
		return "Lossless (700-1499 kbps)"
	case CategoryHigh:
		return "High Bitrate (256-400 kbps)"
	case CategoryStandard:
		return "Standard Bitrate (160-255 kbps)"
	case CategoryLow:
		return "Low Bitrate (64-159 kbps)"
	default:
		return "Other"
	}
}

// Categories lists all buckets from best to worst for stable report output.
func Categories() []Category {
	return []Category{
		CategoryHighRes,
		CategoryLossless,
		CategoryHigh,
		CategoryStandard,
		CategoryLow,
		CategoryUnknown,
	}
}

// Stats summarizes the bitrate distribution of a collection. Files without a
// derived bitrate count toward FileCount but not toward the distribution.
type Stats struct {
	FileCount    int
	RatedCount   int
	Distribution map[Category]int
	AverageKbps  float64
	MinKbps      int
	MaxKbps      int
}

// Analyze computes distribution statistics over a collection of descriptors.
func Analyze(files []media.File) Stats {
	stats := Stats{
		FileCount:    len(files),
		Distribution: make(map[Category]int),
	}

	var totalKbps float64
	for _, file := range files {
		if !file.HasBitrate() {
			continue
		}
		stats.Distribution[CategoryFor(file.BitrateKbps)]++
		stats.RatedCount++
		totalKbps += float64(file.BitrateKbps)
		if stats.MinKbps == 0 || file.BitrateKbps < stats.MinKbps {
			stats.MinKbps = file.BitrateKbps
		}
		if file.BitrateKbps > stats.MaxKbps {
			stats.MaxKbps = file.BitrateKbps
		}
	}
	if stats.RatedCount > 0 {
		stats.AverageKbps = totalKbps / float64(stats.RatedCount)
	}
	return stats
}
