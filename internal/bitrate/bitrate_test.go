package bitrate

import (
	"testing"

	"trackdedup/internal/media"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		kbps int
		want Category
	}{
		{2304, CategoryHighRes},
		{1500, CategoryHighRes},
		{1411, CategoryLossless},
		{700, CategoryLossless},
		{320, CategoryHigh},
		{256, CategoryHigh},
		{255, CategoryStandard},
		{192, CategoryStandard},
		{160, CategoryStandard},
		{159, CategoryLow},
		{64, CategoryLow},
		{63, CategoryUnknown},
		{450, CategoryUnknown},
		{0, CategoryUnknown},
	}
	for _, tc := range tests {
		if got := CategoryFor(tc.kbps); got != tc.want {
			t.Fatalf("CategoryFor(%d) = %v, want %v", tc.kbps, got, tc.want)
		}
	}
}

func TestAnalyze(t *testing.T) {
	files := []media.File{
		{FileName: "a.flac", BitrateKbps: 940},
		{FileName: "b.mp3", BitrateKbps: 320},
		{FileName: "c.mp3", BitrateKbps: 128},
		{FileName: "d.wav"}, // no derived bitrate
	}

	stats := Analyze(files)
	if stats.FileCount != 4 {
		t.Fatalf("FileCount = %d, want 4", stats.FileCount)
	}
	if stats.RatedCount != 3 {
		t.Fatalf("RatedCount = %d, want 3", stats.RatedCount)
	}
	if stats.Distribution[CategoryLossless] != 1 ||
		stats.Distribution[CategoryHigh] != 1 ||
		stats.Distribution[CategoryLow] != 1 {
		t.Fatalf("unexpected distribution %v", stats.Distribution)
	}
	if stats.MinKbps != 128 || stats.MaxKbps != 940 {
		t.Fatalf("min/max = %d/%d, want 128/940", stats.MinKbps, stats.MaxKbps)
	}
	wantAvg := (940.0 + 320.0 + 128.0) / 3
	if stats.AverageKbps != wantAvg {
		t.Fatalf("AverageKbps = %f, want %f", stats.AverageKbps, wantAvg)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	stats := Analyze(nil)
	if stats.FileCount != 0 || stats.RatedCount != 0 || stats.AverageKbps != 0 {
		t.Fatalf("empty analysis should be all zero, got %+v", stats)
	}
}
