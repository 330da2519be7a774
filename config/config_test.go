package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DOCLING_SERVICE_API_KEY", "PORT", "WORKERS", "MAX_FILE_SIZE",
		"ALLOWED_ORIGINS", "DOCLING_BIN", "CONVERSION_TIMEOUT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, int64(52428800), cfg.MaxFileSize)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "docling", cfg.DoclingBin)
	assert.Equal(t, time.Duration(0), cfg.ConversionTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCLING_SERVICE_API_KEY", "secret")
	t.Setenv("PORT", "9100")
	t.Setenv("WORKERS", "4")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("DOCLING_BIN", "/opt/docling/bin/docling")
	t.Setenv("CONVERSION_TIMEOUT", "90")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, int64(1048576), cfg.MaxFileSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "/opt/docling/bin/docling", cfg.DoclingBin)
	assert.Equal(t, 90*time.Second, cfg.ConversionTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadSplitsOriginsVerbatim(t *testing.T) {
	// No trimming: the origin list is split exactly as configured.
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", " https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "PORT", "eighty"},
		{"port out of range", "PORT", "70000"},
		{"bad workers", "WORKERS", "two"},
		{"zero workers", "WORKERS", "0"},
		{"bad max size", "MAX_FILE_SIZE", "10MB"},
		{"zero max size", "MAX_FILE_SIZE", "0"},
		{"bad timeout", "CONVERSION_TIMEOUT", "soon"},
		{"negative timeout", "CONVERSION_TIMEOUT", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Port: 8000}
	assert.Equal(t, ":8000", cfg.Addr())
}

func TestMaxFileSizeMB(t *testing.T) {
	cfg := &Config{MaxFileSize: 52428800}
	assert.Equal(t, 50.0, cfg.MaxFileSizeMB())
}
