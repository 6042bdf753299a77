package dedup

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"trackdedup/internal/media"
)

// Options configure a duplicate scan. The zero value is usable: worker count
// defaults to the available CPUs and progress reporting is disabled.
type Options struct {
	// Workers bounds the goroutine pool evaluating the pair space.
	Workers int
	// Progress, when set, receives the running count of evaluated pairs.
	// It is called from worker goroutines and must be safe for concurrent
	// use. The counter exists for reporting only.
	Progress func(done int64)
	// Logger, when set, receives a debug line per confirmed match.
	Logger *slog.Logger
}

// TotalPairs returns the size of the unordered pair space for n files.
func TotalPairs(n int) int64 {
	return int64(n) * int64(n-1) / 2
}

// FindAll evaluates every unordered pair {i, j}, i < j, exactly once and
// returns the confirmed duplicate matches. Workers claim whole rows of the
// pair space from a shared index, so the input slice is only ever read and
// the set of reported matches is independent of worker count; only the
// enumeration order of the result may vary.
func FindAll(files []media.File, opts Options) Results {
	total := len(files)
	if total == 0 {
		return Results{}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}

	var (
		nextRow atomic.Int64
		pairs   atomic.Int64
		wg      sync.WaitGroup
		mu      sync.Mutex
	)
	var matches []Match

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(nextRow.Add(1)) - 1
				if i >= total-1 {
					return
				}
				var local []Match
				for j := i + 1; j < total; j++ {
					if match, ok := MatchPair(files[i], files[j]); ok {
						local = append(local, match)
						if opts.Logger != nil {
							opts.Logger.Debug("duplicate confirmed",
								"higher", match.HigherQuality.FileName,
								"lower", match.LowerQuality.FileName,
								"reason", match.MatchReason,
								"difference", match.QualityDifference,
							)
						}
					}
					done := pairs.Add(1)
					if opts.Progress != nil {
						opts.Progress(done)
					}
				}
				if len(local) > 0 {
					mu.Lock()
					matches = append(matches, local...)
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	return Results{Matches: matches, TotalFilesScanned: total}
}
