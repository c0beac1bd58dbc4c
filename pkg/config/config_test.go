package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "REDIS_ADDR", "REDIS_DB", "STATE_DIR", "UPLOAD_DIR",
		"MAX_UPLOAD_MB", "QUESTIONS_FILE", "TICK_INTERVAL", "LOG_JSON", "LOG_DEBUG", "DB_MAX_CONNS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.False(t, cfg.LogJSON)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("MAX_UPLOAD_MB", "oops")
	t.Setenv("TICK_INTERVAL", "250ms")
	t.Setenv("LOG_JSON", "true")
	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.True(t, cfg.LogJSON)

	t.Setenv("TICK_INTERVAL", "3")
	assert.Equal(t, 3*time.Second, Load().TickInterval)
	t.Setenv("TICK_INTERVAL", "0")
	assert.Equal(t, time.Duration(0), Load().TickInterval)
}
