//go:build !wasm

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "LOG_LEVEL", "UPDATE_DELAY", "PORT", "WEB_ROOT", "HSTS_MAX_AGE", "CSP_MODE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.UpdateDelay)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./web", cfg.WebRoot)
	assert.Equal(t, 31536000, cfg.HSTSMaxAge)
	assert.Equal(t, "relaxed", cfg.CSPMode)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("UPDATE_DELAY", "250ms")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.UpdateDelay)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("UPDATE_DELAY", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadWithDotenv(t *testing.T) {
	t.Setenv("WEB_ROOT", "")
	require.NoError(t, os.Unsetenv("WEB_ROOT"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WEB_ROOT=/srv/crosslab\n"), 0o600))

	cfg, err := LoadWithDotenv(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/crosslab", cfg.WebRoot)
}

func TestBuildCSP(t *testing.T) {
	assert.Contains(t, BuildCSP("strict"), "'wasm-unsafe-eval'")
	assert.Contains(t, BuildCSP("strict"), "object-src 'none'")
	assert.NotContains(t, BuildCSP("relaxed"), "object-src")
	assert.Contains(t, BuildCSP("relaxed"), "'wasm-unsafe-eval'")
}
