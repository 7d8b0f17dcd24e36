package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, BackendJSON, cfg.Backend)
	assert.Equal(t, "data/employees.json", cfg.RosterPath)
	assert.Equal(t, "payroll-bot.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 32, cfg.QueueSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SaveOnExit)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("ROSTER_BACKEND", "sqlite")
	t.Setenv("DB_PATH", "/tmp/roster.db")
	t.Setenv("WORKERS", "0")
	t.Setenv("SAVE_ON_EXIT", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/roster.db", cfg.DBPath)
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.SaveOnExit)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "")
		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrNoToken{})
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "123:abc")
		t.Setenv("ROSTER_BACKEND", "redis")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "ROSTER_BACKEND")
	})

	t.Run("bad number", func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "123:abc")
		t.Setenv("WORKERS", "many")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
