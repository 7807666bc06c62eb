package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentsift/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TALENTSIFT_SERVER_PORT", ":9999")
	t.Setenv("TALENTSIFT_SERVER_ENVIRONMENT", "production")
	t.Setenv("TALENTSIFT_LOG_LEVEL", "info")
	t.Setenv("TALENTSIFT_LOG_FORMAT", "json")
	t.Setenv("TALENTSIFT_UPLOAD_MAX_FILE_SIZE_MB", "5")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, int64(5), cfg.Upload.MaxFileSizeMB)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7001")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":7001", cfg.Server.Port)
}

func TestLoad_ExplicitPortBeatsPlatformPort(t *testing.T) {
	t.Setenv("PORT", "7001")
	t.Setenv("TALENTSIFT_SERVER_PORT", ":9000")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestLoad_CORSOriginsParsedFromCommaSeparatedList(t *testing.T) {
	t.Setenv("TALENTSIFT_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com ,")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://app.example.com",
		"https://staging.example.com",
	}, cfg.CORS.AllowedOrigins)
}

func TestUploadConfig_MaxBytes(t *testing.T) {
	cfg := config.UploadConfig{MaxFileSizeMB: 10}

	assert.Equal(t, int64(10*1024*1024), cfg.MaxBytes())
}
