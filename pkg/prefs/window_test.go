package prefs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWindowEnv = "SEGUE_WINDOW_STATE_TEST"

func TestWindow_RoundTrip(t *testing.T) {
	t.Setenv(testWindowEnv, "")
	w := NewWindow(testWindowEnv)

	_, ok := w.Get("transition-pending")
	assert.False(t, ok)

	assert.True(t, w.Set("transition-pending", "1"))
	v, ok := w.Get("transition-pending")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	assert.True(t, w.Remove("transition-pending"))
	_, ok = w.Get("transition-pending")
	assert.False(t, ok)
}

func TestWindow_MalformedStateReadsAsEmpty(t *testing.T) {
	t.Setenv(testWindowEnv, "}}}not json")
	w := NewWindow(testWindowEnv)

	_, ok := w.Get("transition-pending")
	assert.False(t, ok)

	// Writes replace the malformed payload with a valid state object.
	assert.True(t, w.Set("transition-pending", "1"))
	v, ok := w.Get("transition-pending")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestWindow_PreservesForeignFields(t *testing.T) {
	t.Setenv(testWindowEnv, `{"other":"state"}`)
	w := NewWindow(testWindowEnv)

	require.True(t, w.Set("k", "v"))
	require.True(t, w.Remove("k"))

	assert.JSONEq(t, `{"other":"state"}`, os.Getenv(testWindowEnv))
}

func TestWindow_RemoveLastKeyDropsNestedField(t *testing.T) {
	t.Setenv(testWindowEnv, "")
	w := NewWindow(testWindowEnv)

	require.True(t, w.Set("k", "v"))
	require.True(t, w.Remove("k"))

	assert.JSONEq(t, `{}`, os.Getenv(testWindowEnv))
}
