package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pdf-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, int64(50*1024*1024), cfg.MaxBodyBytes)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "fitz", cfg.TextEngine)
	assert.False(t, cfg.ValidatePDF)
	assert.Equal(t, 10.0, cfg.MaxScale)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("PDF_TEXT_ENGINE", "ledongthuc")
	t.Setenv("PDF_VALIDATE", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MAX_SCALE", "4.5")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "ledongthuc", cfg.TextEngine)
	assert.True(t, cfg.ValidatePDF)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 4.5, cfg.MaxScale)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MAX_BODY_BYTES=1024\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("MAX_BODY_BYTES") })

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), cfg.MaxBodyBytes)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("PORT", "not-a-port")
	_, err = config.LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigRejectsNonPositiveBodyLimit(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "0")
	_, err := config.LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigRejectsNonPositiveMaxScale(t *testing.T) {
	t.Setenv("MAX_SCALE", "-1")
	_, err := config.LoadConfig("")
	assert.Error(t, err)
}
