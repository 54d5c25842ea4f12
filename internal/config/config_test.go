// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FARKLE_PLAYERS", "")
	t.Setenv("FARKLE_TARGET_SCORE", "")
	t.Setenv("FARKLE_SEED", "")

	cfg := Load()
	assert.Equal(t, DefaultPlayers, cfg.Players)
	assert.Equal(t, DefaultTarget, cfg.Target)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FARKLE_PLAYERS", "4")
	t.Setenv("FARKLE_TARGET_SCORE", "5000")
	t.Setenv("FARKLE_SEED", "12345")

	cfg := Load()
	assert.Equal(t, 4, cfg.Players)
	assert.Equal(t, 5000, cfg.Target)
	assert.Equal(t, int64(12345), cfg.Seed)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("FARKLE_PLAYERS", "many")
	t.Setenv("FARKLE_TARGET_SCORE", "")
	t.Setenv("FARKLE_SEED", "yesterday")

	cfg := Load()
	assert.Equal(t, DefaultPlayers, cfg.Players)
	assert.Equal(t, DefaultTarget, cfg.Target)
	assert.Equal(t, int64(0), cfg.Seed)
}
