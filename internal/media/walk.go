package media

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
)

// CollectPaths walks every root directory and returns the paths of all
// supported audio files, sorted for stable downstream ordering. Entries that
// cannot be accessed are logged and skipped rather than aborting the walk.
func CollectPaths(roots []string, logger *slog.Logger) ([]string, error) {
	var paths []string
	for _, root := range roots {
		resolved := root
		if abs, err := filepath.Abs(root); err == nil {
			resolved = abs
		}
		err := filepath.WalkDir(resolved, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				if logger != nil {
					logger.Warn("skipping inaccessible entry", "path", path, "error", walkErr)
				}
				if entry != nil && entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			if !SupportedPath(path) {
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", resolved, err)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
