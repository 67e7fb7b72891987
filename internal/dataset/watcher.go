package dataset

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherInterface defines the interface for data-file watchers.
type WatcherInterface interface {
	Reloads() <-chan struct{}
	Errors() <-chan error
	Close() error
}

// Watcher signals when a data file changes on disk so the host can reload
// it. The file's directory is watched rather than the file itself, which
// survives editors that replace the file on save.
type Watcher struct {
	watcher    *fsnotify.Watcher
	filePath   string
	modTime    time.Time
	reloadChan chan struct{}
	errorChan  chan error
	done       chan struct{}
}

// NewWatcher creates a watcher for the data file at filePath.
func NewWatcher(filePath string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:    fsWatcher,
		filePath:   filePath,
		modTime:    info.ModTime(),
		reloadChan: make(chan struct{}, 1),
		errorChan:  make(chan error, 10),
		done:       make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch runs the file watching loop.
func (w *Watcher) watch() {
	// Polling backs up fsnotify on filesystems with unreliable events.
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	defer close(w.reloadChan)
	defer close(w.errorChan)

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			w.checkModTime()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name == w.filePath {
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					w.signalReload()
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.errorChan <- err
		}
	}
}

// checkModTime signals a reload if the file's mtime moved since the last
// observation.
func (w *Watcher) checkModTime() {
	info, err := os.Stat(w.filePath)
	if err != nil {
		// The file may be mid-replace; the next event or tick catches it.
		return
	}
	if info.ModTime() != w.modTime {
		w.modTime = info.ModTime()
		w.signalReload()
	}
}

// signalReload delivers a reload notification without blocking. A pending
// notification already covers any newer change.
func (w *Watcher) signalReload() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
	}
}

// Reloads returns a channel that receives a signal whenever the data file
// changes.
func (w *Watcher) Reloads() <-chan struct{} {
	return w.reloadChan
}

// Errors returns a channel of errors that occur during watching.
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		// Already closed
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}
