package userconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Empty(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	config, err := loadFrom(configFile)
	require.NoError(t, err)
	assert.Nil(t, config.Settings)
}

func TestConfig_LoadWithComments(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(configFile, []byte("# empty config\n"), 0o644))

	config, err := loadFrom(configFile)
	require.NoError(t, err)
	assert.Nil(t, config.Settings)
}

func TestConfig_RoundTrip(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nested", "config.yaml")

	config := &Config{Settings: &Settings{
		Theme:        "dark",
		ReduceMotion: true,
		Locale:       "ja",
	}}
	require.NoError(t, config.saveTo(configFile))

	loaded, err := loadFrom(configFile)
	require.NoError(t, err)
	require.NotNil(t, loaded.Settings)
	assert.Equal(t, CurrentVersion, loaded.Version)
	assert.Equal(t, "dark", loaded.Settings.Theme)
	assert.True(t, loaded.Settings.ReduceMotion)
	assert.Equal(t, "ja", loaded.Settings.Locale)
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(configFile, []byte("settings: [not a mapping"), 0o644))

	_, err := loadFrom(configFile)
	assert.Error(t, err)
}
