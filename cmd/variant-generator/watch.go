package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchDebounce collapses the bursts of events editors produce on save.
const watchDebounce = 100 * time.Millisecond

// watchGen generates once, then again after every change to the schema file,
// until the command context is canceled. Failed runs are reported and do not
// stop the watch.
func (a *app) watchGen(cmd *cobra.Command, opts *genOptions) error {
	target, err := filepath.Abs(opts.schemaPath)
	if err != nil {
		return fmt.Errorf("resolving schema path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	a.logger.Info("Watching schema", zap.String("path", target))
	a.regenerate(cmd, opts)

	var debounce <-chan time.Time

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if ev.Name != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}

			debounce = time.After(watchDebounce)
		case <-debounce:
			debounce = nil

			a.regenerate(cmd, opts)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			a.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}

func (a *app) regenerate(cmd *cobra.Command, opts *genOptions) {
	if err := a.runGen(cmd, opts); err != nil {
		a.logger.Error("Generation failed", zap.Error(err))
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	}
}
