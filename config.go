package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultDataPath = "$HOME/.local/share/styleguide/data.db"
	defaultLogPath  = "$HOME/.local/share/styleguide/debug.log"
)

// Config holds the shell's ambient settings. Title and theme of the guide
// are fixed and not configurable.
type Config struct {
	DataPath   string
	LogPath    string
	NoBookmark bool
}

// LoadConfig reads settings from the environment, after loading .env if
// one exists.
func LoadConfig() (Config, error) {
	// Load .env file (ignore error if not found)
	_ = godotenv.Load()

	cfg := Config{
		DataPath: os.ExpandEnv(envOr("STYLEGUIDE_DATA_PATH", defaultDataPath)),
		LogPath:  os.ExpandEnv(envOr("STYLEGUIDE_LOG_PATH", defaultLogPath)),
	}

	if v := os.Getenv("STYLEGUIDE_NO_BOOKMARK"); v != "" {
		noBookmark, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("STYLEGUIDE_NO_BOOKMARK: %w", err)
		}
		cfg.NoBookmark = noBookmark
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
