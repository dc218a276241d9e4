package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jacoelho/jtt/internal/exit"
)

// watchDebounce collapses the burst of events a single save produces.
const watchDebounce = 100 * time.Millisecond

// Watch prints the results once, then again after every change to one of
// the input files, until ctx is done. Evaluation errors are reported and
// watching continues.
func (r *Runner) Watch(ctx context.Context) int {
	if len(r.config.Files) == 0 {
		fmt.Fprintf(r.stderr, "Error: watch requires at least one input file\n")
		return exit.CodeUsage
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(r.stderr, "Error: failed to create file watcher: %v\n", err)
		return exit.CodeFailure
	}
	defer watcher.Close()

	// Directories are watched so editors that replace files on save are seen.
	watched := make(map[string]bool, len(r.config.Files))
	dirs := make(map[string]bool)
	for _, file := range r.config.Files {
		abs, err := filepath.Abs(file)
		if err != nil {
			fmt.Fprintf(r.stderr, "Error: %v\n", err)
			return exit.CodeFailure
		}
		watched[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(r.stderr, "Error: failed to watch %s: %v\n", dir, err)
			return exit.CodeFailure
		}
		dirs[dir] = true
	}

	r.logger.Debug("watch started", "files", len(watched), "debounce_ms", watchDebounce.Milliseconds())
	r.refresh(ctx)

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("watch stopped")
			return exit.CodeSuccess

		case event, ok := <-watcher.Events:
			if !ok {
				fmt.Fprintf(r.stderr, "Error: watcher events channel closed\n")
				return exit.CodeFailure
			}
			if !watched[filepath.Clean(event.Name)] || !isContentChange(event) {
				continue
			}
			r.logger.Debug("file event detected", "path", event.Name, "op", event.Op.String())
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				fmt.Fprintf(r.stderr, "Error: watcher errors channel closed\n")
				return exit.CodeFailure
			}
			r.logger.Warn("file watcher error", "error", err)

		case <-timer.C:
			r.refresh(ctx)
		}
	}
}

// refresh evaluates and prints one round, reporting failures without stopping.
func (r *Runner) refresh(ctx context.Context) {
	matches, err := r.evaluate(ctx)
	if err != nil {
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		return
	}
	if err := r.formatter.Format(matches...); err != nil {
		fmt.Fprintf(r.stderr, "Error formatting results: %v\n", err)
	}
}

func isContentChange(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
