package main

import (
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// newProgress returns a callback suitable for the extractor and scheduler
// progress hooks, plus a finish func. On a non-terminal stdout the callback
// is a no-op so piped output stays clean.
func newProgress(total int64, description string) (func(done int64), func()) {
	if total <= 0 || !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil, func() {}
	}

	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWriter(os.Stdout),
	)

	// Progress callbacks arrive from worker goroutines; serialize updates
	// through the latest observed count instead of locking the bar per pair.
	var latest atomic.Int64
	callback := func(done int64) {
		prev := latest.Load()
		if done <= prev || !latest.CompareAndSwap(prev, done) {
			return
		}
		_ = bar.Set64(done)
	}
	finish := func() {
		_ = bar.Finish()
	}
	return callback, finish
}
