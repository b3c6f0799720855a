package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flxhelpers/flxhelpers/pkg/logger"
)

type ctxKey struct{}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m))
	return m
}

func TestNew_DefaultsToJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug must be filtered at info level")

	log.Info("hello", slog.String("k", "v"))
	m := decodeLine(t, &buf)
	assert.Equal(t, "hello", m["msg"])
	assert.Equal(t, "v", m["k"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestWithFormat_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat("yaml"))
	})
}

func TestWithLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

	log.Info("hidden")
	assert.Zero(t, buf.Len())
	log.Warn("shown")
	assert.Equal(t, "shown", decodeLine(t, &buf)["msg"])
}

func TestWithAttr(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("app", "flx")))

	log.Info("hello")
	assert.Equal(t, "flx", decodeLine(t, &buf)["app"])
}

func TestWithContextValue(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("request_id", ctxKey{}))

	ctx := context.WithValue(context.Background(), ctxKey{}, "abc-123")
	log.InfoContext(ctx, "with value")
	assert.Equal(t, "abc-123", decodeLine(t, &buf)["request_id"])

	buf.Reset()
	log.InfoContext(context.Background(), "without value")
	_, ok := decodeLine(t, &buf)["request_id"]
	assert.False(t, ok)
}

func TestWithContextExtractors_SurvivesWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		return slog.String("trace", "t-1"), true
	}
	log := logger.New(logger.WithOutput(&buf), logger.WithContextExtractors(nil, extractor))

	log.With(logger.Component("email")).InfoContext(context.Background(), "hello")
	m := decodeLine(t, &buf)
	assert.Equal(t, "t-1", m["trace"])
	assert.Equal(t, "email", m["component"])
}

func TestWithEnvironment(t *testing.T) {
	t.Run("production logs json at info", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("PROD", "svc"))

		log.Debug("hidden")
		assert.Zero(t, buf.Len())
		log.Info("hello")
		m := decodeLine(t, &buf)
		assert.Equal(t, "production", m["env"])
		assert.Equal(t, "svc", m["service"])
	})

	t.Run("staging", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("staging", ""))

		log.Info("hello")
		m := decodeLine(t, &buf)
		assert.Equal(t, "staging", m["env"])
		_, ok := m["service"]
		assert.False(t, ok)
	})

	t.Run("unknown falls back to development text", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("local", "svc"))

		log.Debug("visible")
		out := buf.String()
		assert.Contains(t, out, "msg=visible")
		assert.Contains(t, out, "env=development")
	})
}

func TestNewFromConfig(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewFromConfig(logger.Config{
		Env:     "development",
		Service: "flxhelpers",
		Level:   "warn",
		Format:  "JSON",
	}, logger.WithOutput(&buf))

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	m := decodeLine(t, &buf)
	assert.Equal(t, "shown", m["msg"])
	assert.Equal(t, "flxhelpers", m["service"])
}

func TestNewFromConfig_IgnoresBadLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewFromConfig(logger.Config{Env: "production", Level: "loud"}, logger.WithOutput(&buf))

	log.Info("shown")
	assert.True(t, strings.Contains(buf.String(), `"msg":"shown"`))
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() { log.Error("dropped") })
}
