// internal/config/config.go

// Package config reads the harness configuration from the environment.
// Commands load a .env file via godotenv/autoload before calling Load, and
// command-line flags take precedence over everything here.
package config

import (
	"os"
	"strconv"
)

// Defaults for the demo harness.
const (
	DefaultPlayers = 2
	DefaultTarget  = 10000
)

// Config holds the knobs shared by the harness commands. Seed 0 means "seed
// from the clock"; any other value makes runs reproducible.
type Config struct {
	Players int
	Target  int
	Seed    int64
}

// Load reads FARKLE_PLAYERS, FARKLE_TARGET_SCORE and FARKLE_SEED, falling
// back to the defaults for unset or malformed values.
func Load() Config {
	return Config{
		Players: getInt("FARKLE_PLAYERS", DefaultPlayers),
		Target:  getInt("FARKLE_TARGET_SCORE", DefaultTarget),
		Seed:    getInt64("FARKLE_SEED", 0),
	}
}

func getInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return v
		}
	}
	return fallback
}
