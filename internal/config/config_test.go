package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("REPORT_PREFIX", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "bilaad", cfg.ReportPrefix)
	assert.Equal(t, uint64(1), cfg.SeedRandom)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", "portfolio.db")
	t.Setenv("SEED_RANDOM_SEED", "42")
	t.Setenv("UPLOAD_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "portfolio.db", cfg.DBName)
	assert.Equal(t, uint64(42), cfg.SeedRandom)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidSeed(t *testing.T) {
	t.Setenv("SEED_RANDOM_SEED", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
