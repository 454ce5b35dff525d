package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "SERVER_PORT", "SEED_DATA", "SHUTDOWN_TIMEOUT", "APP_ENV"} {
		t.Setenv(key, "")
	}

	cfg := fromViper(newViper())

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SEED_DATA", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("APP_ENV", "production")

	cfg := fromViper(newViper())

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, ":memory:", cfg.SQLitePath)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsProduction())
}
