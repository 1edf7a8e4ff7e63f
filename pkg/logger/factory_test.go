package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csvcheck/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("last format wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText), logger.WithFormat(logger.FormatJSON))
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Zero(t, buf.Len())
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("tenant", key("tenant")))
		ctx := context.WithValue(context.Background(), key("tenant"), "acme")
		log.InfoContext(ctx, "context msg")
		assert.Equal(t, "acme", decode(t, buf)["tenant"])
	})

	t.Run("attaches run id", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		ctx := logger.WithRunID(context.Background(), "run-42")
		log.InfoContext(ctx, "validated")
		assert.Equal(t, "run-42", decode(t, buf)["run_id"])
	})

	t.Run("derived loggers keep extracting", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf)).With(logger.Source("a.csv")).WithGroup("run")
		ctx := logger.WithRunID(context.Background(), "run-7")
		log.InfoContext(ctx, "validated")

		entry := decode(t, buf)
		assert.Equal(t, "a.csv", entry["source"])
		group, ok := entry["run"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "run-7", group["run_id"])
	})
}

func TestWithCLI(t *testing.T) {
	t.Run("verbose enables debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithCLI("csvcheck", true), logger.WithOutput(buf))
		log.Debug("msg")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "app=csvcheck")
	})

	t.Run("quiet by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithCLI("csvcheck", false), logger.WithOutput(buf))
		log.Info("msg")
		assert.Zero(t, buf.Len())
	})
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestRunIDFromContext(t *testing.T) {
	_, ok := logger.RunIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := logger.WithRunID(context.Background(), "")
	_, ok = logger.RunIDFromContext(ctx)
	assert.False(t, ok)

	id, ok := logger.RunIDFromContext(logger.WithRunID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { logger.Discard().Error("ignored") })
}
