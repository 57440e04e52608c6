package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"", zapcore.InfoLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"trace", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "probe.log")
	lc := LogConfig{Level: "debug", Format: "json", File: path}

	logger, err := lc.NewLogger()
	require.NoError(t, err)
	logger.Info("connected")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"connected"`)
}

func TestNewLoggerRotated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.log")
	lc := LogConfig{Level: "info", File: path, Rotate: RotateConfig{MaxSizeMB: 1, MaxBackups: 2}}

	logger, err := lc.NewLogger()
	require.NoError(t, err)
	logger.Debug("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.NotContains(t, string(data), "dropped")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := LogConfig{Level: "loud"}.NewLogger()
	assert.Error(t, err)
}
