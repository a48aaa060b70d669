package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"docstore/internal/app/server/config"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog()
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestPrettyHandler_Handle(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With("component", "test")

	log.Info("document created", "document_id", 7)

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "document created")
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"document_id": 7`)
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With("component", "test")

	log.WithGroup("req").With("method", "GET").WithGroup("").
		Info("handled", "id", 1, slog.Group("user", slog.Int64("id", 9)))

	out := buf.String()
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"req.method": "GET"`)
	assert.Contains(t, out, `"req.id": 1`)
	assert.Contains(t, out, `"req.user.id": 9`)
	assert.NotContains(t, out, `"id": 1,`)
}

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProd, Logger: config.Logger{LogLevel: "error"}}
	log := FromConfig(cfg)

	ctx := context.Background()
	assert.False(t, log.Enabled(ctx, slog.LevelWarn))
	assert.True(t, log.Enabled(ctx, slog.LevelError))

	cfg.Env = config.EnvDev
	assert.True(t, FromConfig(cfg).Enabled(ctx, slog.LevelDebug))
}
