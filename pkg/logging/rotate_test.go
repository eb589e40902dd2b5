package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAppends(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "segue.log")

	r, err := NewRotatingFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	_, err = r.Write([]byte("one\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("two\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestRotateShiftsBackups(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "segue.log")

	r, err := NewRotatingFile(path, WithMaxSize(10), WithMaxBackups(2))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	for range 4 {
		_, err = r.Write([]byte(strings.Repeat("x", 8)))
		require.NoError(t, err)
	}

	assert.FileExists(t, path)
	assert.FileExists(t, path+".1")
	assert.FileExists(t, path+".2")
	assert.NoFileExists(t, path+".3")
}

func TestCloseTwice(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "segue.log")

	r, err := NewRotatingFile(path)
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
}
