// Package organizer relocates the lower-quality file of each confirmed
// duplicate into the configured duplicates directory.
package organizer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"trackdedup/internal/dedup"
	"trackdedup/internal/fileutil"
)

const lockFileName = ".trackdedup.lock"

// Organizer moves duplicate files. A file lock in the destination directory
// serializes concurrent invocations against the same library.
type Organizer struct {
	dir    string
	dryRun bool
	logger *slog.Logger
}

// Moved records a single completed (or planned, in dry-run mode) relocation.
type Moved struct {
	Source      string
	Destination string
}

// New constructs an organizer targeting dir.
func New(dir string, dryRun bool, logger *slog.Logger) *Organizer {
	return &Organizer{dir: dir, dryRun: dryRun, logger: logger}
}

// MoveDuplicates relocates the lower-quality file of every match. Individual
// move failures are logged and skipped; the returned slice lists the moves
// that succeeded. In dry-run mode nothing is touched and every planned move
// is returned.
func (o *Organizer) MoveDuplicates(matches []dedup.Match) ([]Moved, error) {
	if len(matches) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create duplicates directory %q: %w", o.dir, err)
	}

	if !o.dryRun {
		lock := flock.New(filepath.Join(o.dir, lockFileName))
		if err := lock.Lock(); err != nil {
			return nil, fmt.Errorf("lock duplicates directory: %w", err)
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	var moved []Moved
	for _, match := range matches {
		src := match.LowerQuality.Path
		dst := o.destinationFor(match.LowerQuality.FileName)

		if o.dryRun {
			if o.logger != nil {
				o.logger.Info("would move duplicate", "source", src, "destination", dst)
			}
			moved = append(moved, Moved{Source: src, Destination: dst})
			continue
		}

		if err := fileutil.MoveFile(src, dst); err != nil {
			if o.logger != nil {
				o.logger.Error("move duplicate failed", "source", src, "error", err)
			}
			continue
		}
		if o.logger != nil {
			o.logger.Info("moved duplicate", "source", src, "destination", dst)
		}
		moved = append(moved, Moved{Source: src, Destination: dst})
	}
	return moved, nil
}

// destinationFor picks a collision-free path inside the duplicates
// directory, appending a counter suffix when the name is already taken.
func (o *Organizer) destinationFor(fileName string) string {
	dst := filepath.Join(o.dir, fileName)
	if !exists(dst) {
		return dst
	}

	ext := filepath.Ext(fileName)
	stem := strings.TrimSuffix(fileName, ext)
	for counter := 1; ; counter++ {
		candidate := filepath.Join(o.dir, fmt.Sprintf("%s_dup%d%s", stem, counter, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
