package root

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Execute(context.Background(), strings.NewReader(""), &out, &out, args...)
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "segue version")
}

func TestThemeSetAndList(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "theme", "set", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to dark")

	out, err = execute(t, "theme", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "* dark")
	assert.Contains(t, out, "  light")
}

func TestThemeSetRejectsUnknownValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := execute(t, "theme", "set", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestRunRejectsMissingSite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := execute(t, "run", "--site", "/nonexistent")
	require.Error(t, err)
}
