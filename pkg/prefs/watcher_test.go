package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherSignalsPreferenceChange(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.yaml")

	changes := make(chan string, 4)
	w := NewWatcher(path, func(value string) { changes <- value })
	w.debounce = 10 * time.Millisecond
	require.NoError(t, w.Watch())
	t.Cleanup(w.Stop)

	// Atomic replace-by-rename, like another process saving the store.
	require.True(t, NewFile(path).Set(ThemeKey, "dark"))

	select {
	case value := <-changes:
		assert.Equal(t, "dark", value)
	case <-time.After(3 * time.Second):
		t.Fatal("no change signaled")
	}
}

func TestFileWatcherSignalsArbitraryFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")

	changes := make(chan struct{}, 4)
	w := NewFileWatcher(path, func() { changes <- struct{}{} })
	w.debounce = 10 * time.Millisecond
	require.NoError(t, w.Watch())
	t.Cleanup(w.Stop)

	require.NoError(t, os.WriteFile(path, []byte("settings:\n  reduce_motion: true\n"), 0o644))

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change signaled")
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.yaml")

	w := NewWatcher(path, nil)
	require.NoError(t, w.Watch())

	w.Stop()
	w.Stop()
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "state.yaml")

	changes := make(chan string, 4)
	w := NewWatcher(path, func(value string) { changes <- value })
	w.debounce = 10 * time.Millisecond
	require.NoError(t, w.Watch())
	t.Cleanup(w.Stop)

	require.True(t, NewFile(filepath.Join(dir, "other.yaml")).Set(ThemeKey, "dark"))

	select {
	case <-changes:
		t.Fatal("unrelated file change signaled")
	case <-time.After(300 * time.Millisecond):
	}
}
