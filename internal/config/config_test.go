package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "STORE_DRIVER", "LOG_LEVEL", "SHUTDOWN_TIMEOUT", "POSTGRES_HOST", "POSTGRES_PORT"} {
		t.Setenv(key, "")
	}

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("POSTGRES_DB", "polls")
	t.Setenv("POSTGRES_USER", "user")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5433")

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "postgres://user:secret@db:5433/polls?sslmode=disable", cfg.Postgres.ConnString())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	_, _, err := Load()
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	_, _, err = Load()
	assert.Error(t, err)
}
