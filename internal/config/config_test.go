package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("missing file should report exists=false")
	}
	if path == "" {
		t.Fatal("resolved path should still be reported")
	}

	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
	if !cfg.Scan.KeepHistory {
		t.Fatal("history should be kept by default")
	}
	if cfg.Scan.Workers != 0 {
		t.Fatalf("Workers = %d, want 0 (all CPUs)", cfg.Scan.Workers)
	}
	for _, dir := range []string{cfg.Paths.DuplicatesDir, cfg.Paths.ReportDir, cfg.Paths.LogDir, cfg.Paths.DataDir} {
		if !filepath.IsAbs(dir) {
			t.Fatalf("path %q should be expanded to absolute", dir)
		}
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
duplicates_dir = "` + filepath.Join(dir, "dups") + `"

[scan]
workers = 3
keep_history = false

[logging]
format = "JSON"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("exists=%v resolved=%q, want true %q", exists, resolved, path)
	}

	if cfg.Paths.DuplicatesDir != filepath.Join(dir, "dups") {
		t.Fatalf("DuplicatesDir = %q", cfg.Paths.DuplicatesDir)
	}
	if cfg.Scan.Workers != 3 || cfg.Scan.KeepHistory {
		t.Fatalf("unexpected scan settings %+v", cfg.Scan)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("format = %q, want json (lowered)", cfg.Logging.Format)
	}
	// Unset sections keep their defaults.
	if cfg.Logging.Level != "info" {
		t.Fatalf("level = %q, want info", cfg.Logging.Level)
	}
	if !strings.HasSuffix(cfg.Paths.DataDir, "trackdedup") {
		t.Fatalf("DataDir = %q should fall back to the default", cfg.Paths.DataDir)
	}
}

func TestLoadRejectsNegativeWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[scan]\nworkers = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("negative worker count should fail validation")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[scan\nworkers = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("malformed file should fail to parse")
	}
}

func TestNormalizeLoggingFallsBackToConsole(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"
	cfg.normalizeLogging()
	if cfg.Logging.Format != "console" {
		t.Fatalf("format = %q, want console", cfg.Logging.Format)
	}
}

func TestCreateSampleParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := Load(path); err != nil || !exists {
		t.Fatalf("sample config should load cleanly, exists=%v err=%v", exists, err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}
	got, err := ExpandPath("~/music")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "music") {
		t.Fatalf("ExpandPath(~/music) = %q", got)
	}
}
