package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/reader")
	t.Setenv("STYLEGUIDE_DATA_PATH", "")
	t.Setenv("STYLEGUIDE_LOG_PATH", "")
	t.Setenv("STYLEGUIDE_NO_BOOKMARK", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/home/reader/.local/share/styleguide/data.db", cfg.DataPath)
	assert.Equal(t, "/home/reader/.local/share/styleguide/debug.log", cfg.LogPath)
	assert.False(t, cfg.NoBookmark)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STYLEGUIDE_DATA_PATH", "/tmp/guide/data.db")
	t.Setenv("STYLEGUIDE_LOG_PATH", "/tmp/guide/debug.log")
	t.Setenv("STYLEGUIDE_NO_BOOKMARK", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/guide/data.db", cfg.DataPath)
	assert.Equal(t, "/tmp/guide/debug.log", cfg.LogPath)
	assert.True(t, cfg.NoBookmark)
}

func TestLoadConfig_RejectsBadBool(t *testing.T) {
	t.Setenv("STYLEGUIDE_NO_BOOKMARK", "sometimes")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "STYLEGUIDE_NO_BOOKMARK")
}
