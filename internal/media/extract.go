package media

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/dhowden/tag"
)

// Extractor reads file descriptors from disk using a fixed worker pool.
type Extractor struct {
	logger  *slog.Logger
	workers int
}

// NewExtractor constructs an extractor. A non-positive worker count falls
// back to the number of available CPUs.
func NewExtractor(logger *slog.Logger, workers int) *Extractor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Extractor{logger: logger, workers: workers}
}

// ExtractAll probes every path in parallel and returns the descriptors of
// files that could be read. Unreadable files are logged and dropped so the
// matching engine only ever sees descriptors extraction succeeded on.
// The optional progress callback receives the running count of processed
// paths.
func (e *Extractor) ExtractAll(paths []string, progress func(done int64)) []File {
	if len(paths) == 0 {
		return nil
	}

	workers := e.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	var (
		next atomic.Int64
		done atomic.Int64
		wg   sync.WaitGroup
		mu   sync.Mutex
	)
	files := make([]File, 0, len(paths))

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx := int(next.Add(1)) - 1
				if idx >= len(paths) {
					return
				}
				file, err := e.extract(paths[idx])
				processed := done.Add(1)
				if progress != nil {
					progress(processed)
				}
				if err != nil {
					if e.logger != nil {
						e.logger.Warn("skipping unreadable file", "path", paths[idx], "error", err)
					}
					continue
				}
				mu.Lock()
				files = append(files, file)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// extract builds a descriptor for a single path. Only stat failures are
// reported as errors; missing tags or an unprobeable stream degrade to zero
// fields.
func (e *Extractor) extract(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}

	file := File{
		Path:      path,
		FileName:  filepath.Base(path),
		SizeBytes: info.Size(),
	}

	e.readTags(path, &file)

	duration, err := probeDuration(path)
	if err != nil {
		if e.logger != nil {
			e.logger.Debug("duration probe failed", "path", path, "error", err)
		}
		return file, nil
	}
	file.DurationSecs = duration
	if duration > 0 {
		file.BitrateKbps = int(float64(file.SizeBytes) * 8 / duration / 1000)
	}
	return file, nil
}

func (e *Extractor) readTags(path string, file *File) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		// WAV files and untagged rips commonly have no tag block.
		return
	}
	file.Artist = meta.Artist()
	file.Title = meta.Title()
	file.Album = meta.Album()
}
