package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/PatriceDouge/dadgpt/internal/event"
	"github.com/PatriceDouge/dadgpt/internal/logging"
)

// Watcher invalidates a Resolver's cache when a config document changes on
// disk, and publishes a ConfigUpdated event so interested components can
// re-read settings.
type Watcher struct {
	resolver *Resolver
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

// Watch starts watching the resolver's global and project config files.
// The parent directories are watched, not the files themselves, so renames
// (including our own atomic saves) are seen.
func Watch(r *Resolver) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	targets := map[string]bool{
		r.GlobalPath():  true,
		r.ProjectPath(): true,
	}
	dirs := map[string]bool{}
	for path := range targets {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		// A missing directory just means that source does not exist yet.
		if err := fsw.Add(dir); err != nil {
			logging.Debug().Str("dir", dir).Err(err).Msg("config watch skipped")
		}
	}

	w := &Watcher{resolver: r, fsw: fsw, done: make(chan struct{})}
	go w.loop(targets)
	return w, nil
}

func (w *Watcher) loop(targets map[string]bool) {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !targets[filepath.Clean(ev.Name)] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logging.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("config changed on disk")
			w.resolver.Invalidate()
			event.Publish(event.Event{
				Type: event.ConfigUpdated,
				Data: event.ConfigUpdatedData{Path: ev.Name},
			})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Warn().Err(err).Msg("config watcher error")
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
