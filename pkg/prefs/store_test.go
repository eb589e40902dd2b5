package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failing is a backend where every operation fails, standing in for a
// blocked storage channel.
type failing struct{}

func (failing) Get(string) (string, bool) { return "", false }
func (failing) Set(string, string) bool   { return false }
func (failing) Remove(string) bool        { return false }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SEGUE_TEST_WINDOW_STATE", "")
	return New(
		NewFile(filepath.Join(dir, "state.yaml")),
		NewFile(filepath.Join(dir, "session.yaml")),
		NewWindow("SEGUE_TEST_WINDOW_STATE"),
	)
}

func TestStore_PreferenceRoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.ReadPreference()
	assert.False(t, ok)

	assert.True(t, s.WritePreference("dark"))

	v, ok := s.ReadPreference()
	require.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestStore_PendingConsumedAtMostOnce(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.ConsumePending())

	s.SetPending()
	assert.True(t, s.ConsumePending())
	assert.False(t, s.ConsumePending(), "second read must observe a cleared flag")
}

func TestStore_PendingSurvivesSingleChannel(t *testing.T) {
	// Only the window channel works; the flag must still round-trip.
	t.Setenv("SEGUE_TEST_WINDOW_STATE", "")
	s := New(failing{}, failing{}, NewWindow("SEGUE_TEST_WINDOW_STATE"))

	s.SetPending()
	assert.True(t, s.ConsumePending())
	assert.False(t, s.ConsumePending())
}

func TestStore_AllChannelsBlocked(t *testing.T) {
	t.Parallel()
	s := New(failing{}, failing{})

	assert.False(t, s.WritePreference("light"))
	s.SetPending()
	assert.False(t, s.ConsumePending())
}

func TestChain_GetPrefersEarlierBackend(t *testing.T) {
	dir := t.TempDir()
	first := NewFile(filepath.Join(dir, "a.yaml"))
	second := NewFile(filepath.Join(dir, "b.yaml"))
	chain := NewChain(first, second)

	second.Set("k", "from-second")
	v, ok := chain.Get("k")
	require.True(t, ok)
	assert.Equal(t, "from-second", v)

	first.Set("k", "from-first")
	v, ok = chain.Get("k")
	require.True(t, ok)
	assert.Equal(t, "from-first", v)
}

func TestChain_ConsumeFlagClearsEveryBackend(t *testing.T) {
	dir := t.TempDir()
	first := NewFile(filepath.Join(dir, "a.yaml"))
	second := NewFile(filepath.Join(dir, "b.yaml"))
	chain := NewChain(first, second)

	chain.SetFlag("pending")
	assert.True(t, chain.ConsumeFlag("pending"))

	_, ok := first.Get("pending")
	assert.False(t, ok)
	_, ok = second.Get("pending")
	assert.False(t, ok)
}

func TestFile_MalformedContentReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o644))

	f := NewFile(path)
	_, ok := f.Get("theme")
	assert.False(t, ok)

	// Writing over malformed content recovers the file.
	assert.True(t, f.Set("theme", "light"))
	v, ok := f.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestFile_RemoveMissingKey(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "state.yaml"))
	assert.False(t, f.Remove("absent"))
}
