package main

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amincahcepu/Remote-Docling/config"
	"github.com/amincahcepu/Remote-Docling/internal/auth"
	"github.com/amincahcepu/Remote-Docling/pkg/logger"
)

func TestWaitForShutdownLogsSignal(t *testing.T) {
	tests := []struct {
		sig  os.Signal
		name string
	}{
		{syscall.SIGTERM, "terminated"},
		{syscall.SIGINT, "interrupt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := logger.NewTestLogger()
			quit := make(chan os.Signal, 1)
			quit <- tt.sig

			got := waitForShutdown(quit, tl)

			assert.Equal(t, tt.sig, got)
			entries := tl.GetEntries()
			require.Len(t, entries, 1)
			assert.Equal(t, "Shutdown signal received", entries[0].Message)
			require.Len(t, entries[0].Fields, 1)
			assert.Equal(t, "signal", entries[0].Fields[0].Key)
			assert.Equal(t, tt.name, entries[0].Fields[0].String)
		})
	}
}

func TestStartupRecordReportsGuardState(t *testing.T) {
	// The guard, not the raw config, decides api_key_configured.
	cfg := &config.Config{
		Port:           8000,
		Workers:        2,
		MaxFileSize:    52428800,
		AllowedOrigins: []string{"*"},
	}

	tests := []struct {
		name string
		key  string
		want int64
	}{
		{"key configured", "topsecret", 1},
		{"auth disabled", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := logger.NewTestLogger()
			logStartup(tl, cfg, auth.NewGuard(tt.key, tl))

			entries := tl.GetEntries()
			require.Len(t, entries, 1)
			assert.Equal(t, "Configuration loaded", entries[0].Message)

			found := false
			for _, f := range entries[0].Fields {
				if f.Key == "api_key_configured" {
					found = true
					assert.Equal(t, tt.want, f.Integer)
				}
			}
			assert.True(t, found, "expected api_key_configured field")
		})
	}
}
