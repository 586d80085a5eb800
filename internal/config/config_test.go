package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir from go1.24, needed while building with go1.21.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // avoid picking up a developer's config file

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, "data/budget.db", cfg.Database.Path)
	assert.Empty(t, cfg.Auth.JWTSecret, "no default secret")
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BUDGET_SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("BUDGET_DATABASE_PATH", "/tmp/other.db")
	t.Setenv("BUDGET_AUTH_JWTSECRET", "hunter2")
	t.Setenv("BUDGET_AUTH_TOKENTTLHOURS", "48")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, "hunter2", cfg.Auth.JWTSecret)
	assert.Equal(t, 48, cfg.Auth.TokenTTLHours)
}
