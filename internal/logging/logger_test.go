package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewDefaultConfig()

	logger, err := NewLogger(cfg, &buf)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, cfg, logger.config)
}

func TestNewLogger_InvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Format = "xml"

	_, err := NewLogger(cfg, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewLogger(NewDefaultConfig(), nil)
	assert.Error(t, err)
}

func TestNewLogger_JSONOutputWithFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewDefaultConfig()
	cfg.Format = "json"
	cfg.Level = zapcore.DebugLevel
	cfg.Fields = map[string]string{"tool": "yuuskel"}

	logger, err := NewLogger(cfg, &buf)
	require.NoError(t, err)

	ctx := WithProject(context.Background(), "/tmp/p")
	logger.Debug(ctx, "scaffolded", zap.Int("created", 8))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scaffolded", entry["msg"])
	assert.Equal(t, "yuuskel", entry["tool"])
	assert.Equal(t, "/tmp/p", entry["project.root"])
	assert.Equal(t, float64(8), entry["created"])
}

func TestNewLogger_DefaultLevelIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(NewDefaultConfig(), &buf)
	require.NoError(t, err)

	logger.Info(context.Background(), "noise")
	assert.Empty(t, buf.String())

	logger.Warn(context.Background(), "signal")
	assert.Contains(t, buf.String(), "signal")
}

func TestLogger_ContextAwareMethods(t *testing.T) {
	core, observed := observer.New(TraceLevel)
	logger := &Logger{
		zap:    zap.New(core),
		config: NewDefaultConfig(),
	}

	ctx := context.Background()

	tests := []struct {
		name    string
		logFunc func()
		level   zapcore.Level
		message string
	}{
		{"trace", func() { logger.Trace(ctx, "trace message", zap.String("key", "val")) }, TraceLevel, "trace message"},
		{"debug", func() { logger.Debug(ctx, "debug message", zap.String("key", "val")) }, zapcore.DebugLevel, "debug message"},
		{"info", func() { logger.Info(ctx, "info message", zap.String("key", "val")) }, zapcore.InfoLevel, "info message"},
		{"warn", func() { logger.Warn(ctx, "warn message", zap.String("key", "val")) }, zapcore.WarnLevel, "warn message"},
		{"error", func() { logger.Error(ctx, "error message", zap.String("key", "val")) }, zapcore.ErrorLevel, "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observed.TakeAll()
			tt.logFunc()

			logs := observed.All()
			require.Len(t, logs, 1)
			assert.Equal(t, tt.level, logs[0].Level)
			assert.Equal(t, tt.message, logs[0].Message)
			assert.Len(t, logs[0].Context, 1)
		})
	}
}

func TestLogger_Named(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := &Logger{zap: zap.New(core), config: NewDefaultConfig()}

	logger.Named("vcs").Info(context.Background(), "named log")

	logs := observed.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "vcs", logs[0].LoggerName)
}

func TestLogger_InjectsContextFields(t *testing.T) {
	tl := NewTestLogger()

	ctx := WithStep(WithProject(context.Background(), "/srv/proj"), "envfile")
	tl.Info(ctx, "wrote env")

	tl.AssertField(t, "wrote env", "project.root", "/srv/proj")
	tl.AssertField(t, "wrote env", "step", "envfile")
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	tl := NewTestLogger()
	ctx := WithLogger(context.Background(), tl.Logger)
	assert.Same(t, tl.Logger, FromContext(ctx))
}
