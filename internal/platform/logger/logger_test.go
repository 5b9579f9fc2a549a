package logger_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/junction-api/internal/config"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "info", wantDebug: false, wantInfo: true},
		{level: "WARN", wantDebug: false, wantInfo: false},
		{level: "bogus", wantDebug: false, wantInfo: true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			buf := &logger.TestLogBuffer{}
			l := logger.New(config.ServerConfig{LogLevel: tc.level, LogFormat: "json"}, buf)

			l.Debug("debug message")
			l.Info("info message")

			out := buf.String()
			assert.Equal(t, tc.wantDebug, strings.Contains(out, "debug message"))
			assert.Equal(t, tc.wantInfo, strings.Contains(out, "info message"))
		})
	}
}

func TestNew_TextFormat(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	l := logger.New(config.ServerConfig{LogLevel: "info", LogFormat: "text"}, buf)

	l.Info("hello", "key", "value")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "key=value")
}

func TestFromContext(t *testing.T) {
	buf, defaultLogger := logger.SetupTestLogger(t)

	assert.Same(t, defaultLogger, logger.FromContext(context.Background()))

	scoped := defaultLogger.With(slog.String("trace_id", "abc"))
	ctx := logger.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, logger.FromContext(ctx))

	logger.FromContext(ctx).Info("scoped message")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["trace_id"])
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewJSONHandler(&logger.TestLogBuffer{}, nil))

	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
}
