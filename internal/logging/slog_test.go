package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	t.Run("forwards structured fields", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger := NewSlog(slog.New(handler))

		logger.Debug("assignment computed", "partitions", 42)
		logger.Info("roster loaded", "endpoints", 3)
		logger.Warn("roster smaller than replication", "hosts", 1)
		logger.Error("assignment failed", "reason", "canceled")

		out := buf.String()
		require.Contains(t, out, "assignment computed")
		require.Contains(t, out, "partitions=42")
		require.Contains(t, out, "level=INFO")
		require.Contains(t, out, "level=WARN")
		require.Contains(t, out, "level=ERROR")
	})

	t.Run("default constructor wraps slog.Default", func(t *testing.T) {
		require.NotNil(t, NewSlogDefault())
	})
}
