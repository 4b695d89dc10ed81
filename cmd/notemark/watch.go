package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the bursts of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// watchNote renders a note to stdout, then again after every change until
// ctx is canceled. The parent directory is watched so that editors which
// replace the file on save keep triggering renders.
func watchNote(ctx context.Context, prev Previewer, n NoteFile, env *Environment) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(n.InputPath)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	target := filepath.Clean(n.InputPath)

	render := func() {
		r := renderNote(ctx, prev, n, renderParams{})
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", n.InputPath, r.Err)
			return
		}
		_, _ = env.Stdout.Write(r.Output)
	}
	render()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			fire = time.After(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "warning: watcher: %v\n", err)
		case <-fire:
			fire = nil
			fmt.Fprintf(env.Stderr, "Updated %s at %s\n", n.Name, env.Now().Format(time.TimeOnly))
			render()
		}
	}
}
