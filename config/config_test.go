package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9, config.Width)
	assert.Equal(t, 9, config.Height)
	assert.Equal(t, 10, config.NumMines)
	assert.Equal(t, 20, config.History)
	assert.True(t, config.FlagOpened)
	assert.Equal(t, "warning", config.LogLevel)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TERMSWEEP_WIDTH", "16")
	t.Setenv("TERMSWEEP_FLAG_OPENED", "false")

	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 16, config.Width)
	assert.False(t, config.FlagOpened)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termsweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 30\nheight: 16\nmines: 99\nhistory: 5\n"), 0o644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, config.Width)
	assert.Equal(t, 16, config.Height)
	assert.Equal(t, 99, config.NumMines)
	assert.Equal(t, 5, config.History)
}

func TestLoadInvalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("no mines", func(t *testing.T) {
		t.Setenv("TERMSWEEP_MINES", "0")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("mine map needs no size", func(t *testing.T) {
		t.Setenv("TERMSWEEP_MINES", "0")
		t.Setenv("TERMSWEEP_MAP", "layout.yaml")
		_, err := Load("")
		assert.NoError(t, err)
	})
}
