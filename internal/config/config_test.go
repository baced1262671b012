package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// empty values count as unset
	for _, key := range []string{"PORT", "STORAGE_DRIVER", "RETENTION_SCHEDULE", "RETENTION_DAYS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "@daily", cfg.RetentionSchedule)
	assert.Equal(t, time.Duration(0), cfg.Retention())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("RETENTION_DAYS", "30")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention())
}
