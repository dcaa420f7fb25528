package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		level string
	}{
		{level: "debug"},
		{level: "info"},
		{level: "warn"},
		{level: "error"},
		{level: "not-a-level"},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 3000, LogLevel: tc.level})
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestContextLogger(t *testing.T) {
	attached := slog.Default().With("component", "test")

	t.Run("round trips through context", func(t *testing.T) {
		ctx := WithLogger(context.Background(), attached)
		assert.Same(t, attached, FromContext(ctx))
	})

	t.Run("falls back to default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("falls back to provided logger", func(t *testing.T) {
		fallback := slog.Default().With("component", "fallback")
		got := FromContextOrDefault(context.Background(), fallback)
		assert.Same(t, fallback, got)
	})

	t.Run("context wins over provided fallback", func(t *testing.T) {
		ctx := WithLogger(context.Background(), attached)
		fallback := slog.Default().With("component", "fallback")
		assert.Same(t, attached, FromContextOrDefault(ctx, fallback))
	})
}
