package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"cmsdesk/internal/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects package output into a buffer for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Output
	Output = &buf
	t.Cleanup(func() { Output = prev })
	return &buf
}

// TestNewLogger tests the creation of a new JSON logger
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		debugLogged bool
	}{
		{name: "default log level (info)", logLevel: "", debugLogged: false},
		{name: "debug log level", logLevel: "debug", debugLogged: true},
		{name: "invalid log level defaults to info", logLevel: "loud", debugLogged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			t.Setenv("LOG_LEVEL", tt.logLevel)
			buf := captureOutput(t)

			// Act
			logger := NewLogger()
			logger.Debug("debug line")
			logger.Info("info line")

			// Assert
			assert.Equal(t, tt.debugLogged, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Contains(t, buf.String(), "info line")
		})
	}
}

func TestNewLogger_WarnLevelFiltersInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	buf := captureOutput(t)

	logger := NewLogger()
	logger.Info("quiet")
	logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

// TestNew_Format tests handler selection by format name
func TestNew_Format(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	t.Run("json", func(t *testing.T) {
		buf := captureOutput(t)
		New("JSON").Info("hello")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output should be valid JSON")
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text", func(t *testing.T) {
		buf := captureOutput(t)
		New("text").Info("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewWithLevel(t *testing.T) {
	buf := captureOutput(t)

	logger := NewWithLevel("json", "error")
	logger.Warn("dropped")
	logger.Error("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

// TestWithRequestID tests adding request ID to logger
func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx := requestid.WithRequestID(context.Background(), "550e8400-e29b-41d4-a716-446655440000")

	WithRequestID(ctx, baseLogger).Info("test message")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry), "output should be valid JSON")
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", logEntry["request_id"])
}

// TestWithRequestID_EmptyRequestID tests behavior with empty request ID
func TestWithRequestID_EmptyRequestID(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger := WithRequestID(context.Background(), baseLogger)
	logger.Info("test message")

	assert.Same(t, baseLogger, logger)
	assert.NotContains(t, buf.String(), "request_id", "should not contain request_id field")
}

// TestWithFields tests adding structured fields to logger
func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	fields := map[string]interface{}{
		"resource": "articles",
		"page":     3,
		"ok":       true,
	}
	WithFields(baseLogger, fields).Info("test message")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "articles", logEntry["resource"])
	assert.Equal(t, float64(3), logEntry["page"])
	assert.Equal(t, true, logEntry["ok"])
}

// TestFromContext tests retrieving logger from context
func TestFromContext(t *testing.T) {
	t.Run("with logger in context", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
		ctx := WithLogger(context.Background(), logger)
		assert.Same(t, logger, FromContext(ctx))
	})

	t.Run("without logger in context", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("with invalid value in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), loggerContextKey, "not a logger")
		assert.Equal(t, slog.Default(), FromContext(ctx))
	})
}
