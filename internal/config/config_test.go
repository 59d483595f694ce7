package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("NORTHWIND_PRIMARY.ENV", "local")
	t.Setenv("NORTHWIND_PRIMARY.LOG_LEVEL", "debug")
	t.Setenv("NORTHWIND_SERVER.PORT", "8080")
	t.Setenv("NORTHWIND_SERVER.READ_TIMEOUT", "10")
	t.Setenv("NORTHWIND_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("NORTHWIND_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("NORTHWIND_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	t.Setenv("NORTHWIND_DATABASE.HOST", "localhost")
	t.Setenv("NORTHWIND_DATABASE.PORT", "5432")
	t.Setenv("NORTHWIND_DATABASE.USER", "northwind")
	t.Setenv("NORTHWIND_DATABASE.PASSWORD", "northwind")
	t.Setenv("NORTHWIND_DATABASE.NAME", "northwind")
	t.Setenv("NORTHWIND_DATABASE.SSL_MODE", "disable")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadMissingRequiredValue(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NORTHWIND_DATABASE.HOST", "")

	_, err := Load()

	assert.Error(t, err)
}
