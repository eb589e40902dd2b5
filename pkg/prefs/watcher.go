package prefs

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a file for changes made by another process (another
// terminal window changing the theme, an editor rewriting the config) and
// signals them. It does NOT apply anything itself; the caller forwards the
// change onto the UI loop to avoid racing the render state.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	stopChan chan struct{}
	signal   func()

	// debounce can be shortened in tests
	debounce time.Duration
}

// NewWatcher creates a watcher for the given durable backend path. The
// onChange callback receives the preference value read after the change
// (empty when the key is gone).
func NewWatcher(path string, onChange func(value string)) *Watcher {
	w := newPathWatcher(path)
	w.signal = func() {
		value, _ := NewFile(path).Get(ThemeKey)
		slog.Debug("Preference file changed, signaling", "value", value)
		if onChange != nil {
			onChange(value)
		}
	}
	return w
}

// NewFileWatcher creates a watcher for an arbitrary file; onChange is
// called after each debounced change, and the caller re-reads the file.
func NewFileWatcher(path string, onChange func()) *Watcher {
	w := newPathWatcher(path)
	w.signal = func() {
		slog.Debug("Watched file changed, signaling", "path", path)
		if onChange != nil {
			onChange()
		}
	}
	return w
}

func newPathWatcher(path string) *Watcher {
	return &Watcher{
		path:     path,
		debounce: 150 * time.Millisecond,
	}
}

// Watch starts watching. The parent directory is watched rather than the
// file itself so atomic replace-by-rename writes are caught.
func (w *Watcher) Watch() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopLocked()

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	w.watcher = watcher
	w.stopChan = make(chan struct{})

	go w.watchLoop(watcher, w.stopChan)

	slog.Debug("Started watching preference file", "path", w.path)
	return nil
}

// Stop stops watching.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

func (w *Watcher) stopLocked() {
	if w.stopChan != nil {
		close(w.stopChan)
		w.stopChan = nil
	}
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
	}
}

func (w *Watcher) watchLoop(watcher *fsnotify.Watcher, stopChan chan struct{}) {
	var debounceTimer *time.Timer

	for {
		select {
		case <-stopChan:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Atomic saves arrive as a rename of a temp file onto the
			// target, so match on basename rather than the exact path.
			if filepath.Base(filepath.Clean(event.Name)) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, w.signal)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Preference file watcher error", "error", err)
		}
	}
}
