package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tricks.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 1)
	w := NewWatcher(path, 5*time.Millisecond, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	w.Start()
	defer w.Stop()

	// let the first scan prime the cached mtime
	time.Sleep(30 * time.Millisecond)

	// push the mtime forward explicitly; filesystem mtime granularity can
	// be a full second, far coarser than the poll interval
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-changed:
		if p != path {
			t.Fatalf("callback got path %q, want %q", p, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never fired after the mtime moved")
	}
}

func TestWatcherDoesNotFireOnPrime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tricks.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 1)
	w := NewWatcher(path, 5*time.Millisecond, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	w.Start()
	defer w.Stop()

	select {
	case <-changed:
		t.Fatal("watcher fired without the file changing")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestWatcherSurvivesMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tricks.yaml")

	changed := make(chan string, 1)
	w := NewWatcher(path, 5*time.Millisecond, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	w.Start()
	defer w.Stop()

	// a few empty scans, then the file appears (e.g. mid-deploy)
	time.Sleep(30 * time.Millisecond)
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	// the first successful stat primes the cache, a later touch fires
	time.Sleep(30 * time.Millisecond)
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never caught up after the file appeared")
	}
}
