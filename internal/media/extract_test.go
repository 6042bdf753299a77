package media

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtractAllDegradesWithoutBitrate(t *testing.T) {
	dir := t.TempDir()
	// Not a decodable stream, so duration probing fails and the descriptor
	// keeps only path and size.
	path := filepath.Join(dir, "Artist - Track.mp3")
	payload := []byte("not really audio data")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatal(err)
	}

	files := NewExtractor(discardLogger(), 2).ExtractAll([]string{path}, nil)
	if len(files) != 1 {
		t.Fatalf("extracted %d files, want 1", len(files))
	}

	file := files[0]
	if file.Path != path {
		t.Fatalf("Path = %q, want %q", file.Path, path)
	}
	if file.FileName != "Artist - Track.mp3" {
		t.Fatalf("FileName = %q", file.FileName)
	}
	if file.SizeBytes != int64(len(payload)) {
		t.Fatalf("SizeBytes = %d, want %d", file.SizeBytes, len(payload))
	}
	if file.HasBitrate() {
		t.Fatalf("undecodable file must not carry a bitrate, got %d", file.BitrateKbps)
	}
}

func TestExtractAllDropsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.mp3")
	if err := os.WriteFile(present, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.mp3")

	var final atomic.Int64
	files := NewExtractor(discardLogger(), 4).ExtractAll(
		[]string{present, missing},
		func(done int64) {
			for {
				prev := final.Load()
				if done <= prev || final.CompareAndSwap(prev, done) {
					return
				}
			}
		},
	)

	if len(files) != 1 {
		t.Fatalf("extracted %d files, want 1", len(files))
	}
	if files[0].Path != present {
		t.Fatalf("kept %q, want %q", files[0].Path, present)
	}
	if final.Load() != 2 {
		t.Fatalf("progress peaked at %d, want 2 (missing files still count)", final.Load())
	}
}

func TestExtractAllSortsByPath(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "c.mp3"),
		filepath.Join(dir, "a.mp3"),
		filepath.Join(dir, "b.mp3"),
	}
	for _, path := range paths {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files := NewExtractor(discardLogger(), 3).ExtractAll(paths, nil)
	if len(files) != 3 {
		t.Fatalf("extracted %d files, want 3", len(files))
	}
	for i := 1; i < len(files); i++ {
		if files[i-1].Path > files[i].Path {
			t.Fatalf("descriptors not sorted: %q before %q", files[i-1].Path, files[i].Path)
		}
	}
}
