package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("SELECTION_COOLDOWN", "")
	t.Setenv("PRIMARY_CURRENCY", "")

	cfg := Load()
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "tripplan.document", cfg.Storage.Key)
	assert.Equal(t, "none", cfg.Notify.Backend)
	assert.Equal(t, 600*time.Millisecond, cfg.SelectionCooldown)
	assert.Equal(t, "JPY", cfg.Currency.Primary)
	assert.Equal(t, "TWD", cfg.Currency.Secondary)
	assert.Equal(t, 5*time.Second, cfg.Weather.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SELECTION_COOLDOWN", "1s")
	t.Setenv("SECONDARY_CURRENCY", "usd")

	cfg := Load()
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, 3, cfg.Storage.RedisDB)
	assert.Equal(t, time.Second, cfg.SelectionCooldown)
	assert.Equal(t, "USD", cfg.Currency.Secondary)
}

func TestEnvHelpers_BadValues(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_DUR", "soon")
	t.Setenv("X_NEG", "-5s")

	assert.Equal(t, 7, envInt("X_INT", 7))
	assert.Equal(t, time.Minute, envDur("X_DUR", time.Minute))
	assert.Equal(t, time.Minute, envDur("X_NEG", time.Minute))
	assert.Equal(t, "fallback", envStr("X_UNSET_FOR_TEST", "fallback"))
}
