package catalog

import (
	"os"
	"time"
)

// Watcher polls a catalog file's modification time and invokes a callback
// when it changes. Polling is plenty for a single config file and keeps
// the standard library the only dependency here.
type Watcher struct {
	Path     string
	Interval time.Duration

	onChange func(string)
	stopCh   chan struct{}
	lastMod  time.Time
}

// NewWatcher creates a watcher for the given path and interval.
func NewWatcher(path string, interval time.Duration, onChange func(string)) *Watcher {
	return &Watcher{
		Path:     path,
		Interval: interval,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}
}

// Start begins polling in a goroutine. The first scan primes the cached
// mtime without firing the callback.
func (w *Watcher) Start() {
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		w.scan(true)
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

func (w *Watcher) scan(prime bool) {
	fi, err := os.Stat(w.Path)
	if err != nil {
		// file may be mid-replace; try again next tick
		return
	}
	mt := fi.ModTime()
	if w.lastMod.IsZero() {
		w.lastMod = mt
		return
	}
	if mt.After(w.lastMod) {
		w.lastMod = mt
		if !prime && w.onChange != nil {
			w.onChange(w.Path)
		}
	}
}
