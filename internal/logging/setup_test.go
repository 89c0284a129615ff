package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandlerText(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel log.Level
		expectCaller  bool
	}{
		{"trace level", "trace", log.DebugLevel, true},
		{"debug level", "debug", log.DebugLevel, false},
		{"info level", "info", log.InfoLevel, false},
		{"warn level", "warn", log.WarnLevel, false},
		{"warning level", "warning", log.WarnLevel, false},
		{"error level", "error", log.ErrorLevel, false},
		{"mixed case level", "DeBuG", log.DebugLevel, false},
		{"unknown level defaults to info", "verbose", log.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := SetupHandlerText(tt.logLevel, buf)
			require.NotNil(t, handler)

			logger, ok := handler.(*log.Logger)
			require.True(t, ok)
			assert.Equal(t, tt.expectedLevel, logger.GetLevel())

			slog.New(handler).Error("test message", "fontSize", "20px")
			output := buf.String()
			assert.Contains(t, output, "test message")
			assert.Contains(t, output, "fontSize")
			assert.Contains(t, output, "20px")
			if tt.expectCaller {
				assert.Contains(t, output, ".go:")
			}
		})
	}
}

func TestSetupHandlerText_NilWriter(t *testing.T) {
	handler := SetupHandlerText("info", nil)
	require.NotNil(t, handler)
	slog.New(handler).Debug("filtered, never written")
}

func TestSetupHandlerJSON(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		logAt        slog.Level
		expectLevel  string
		expectCaller bool
	}{
		{"trace level", "trace", slog.LevelDebug, `"level":"DEBUG"`, true},
		{"debug level", "debug", slog.LevelDebug, `"level":"DEBUG"`, false},
		{"info level", "info", slog.LevelInfo, `"level":"INFO"`, false},
		{"warning level", "warning", slog.LevelWarn, `"level":"WARN"`, false},
		{"uppercase level", "ERROR", slog.LevelError, `"level":"ERROR"`, false},
		{"empty level defaults to info", "", slog.LevelInfo, `"level":"INFO"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler := SetupHandlerJSON(tt.logLevel, buf)
			require.NotNil(t, handler)

			slog.New(handler).Log(t.Context(), tt.logAt, "test message", "key", "value")

			output := buf.String()
			assert.Contains(t, output, `"msg":"test message"`)
			assert.Contains(t, output, `"key":"value"`)
			assert.Contains(t, output, tt.expectLevel)
			if tt.expectCaller {
				assert.Contains(t, output, `"source"`)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			handler, err := SetupHandler(format, "warn", buf)
			require.NoError(t, err)
			logger := slog.New(handler)

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")
			logger.Error("error message")

			output := buf.String()
			assert.NotContains(t, output, "debug message")
			assert.NotContains(t, output, "info message")
			assert.Contains(t, output, "warn message")
			assert.Contains(t, output, "error message")
		})
	}
}

func TestSetupHandler(t *testing.T) {
	buf := &bytes.Buffer{}

	h, err := SetupHandler("text", "info", buf)
	require.NoError(t, err)
	assert.IsType(t, &log.Logger{}, h)

	h, err = SetupHandler("", "info", buf)
	require.NoError(t, err)
	assert.IsType(t, &log.Logger{}, h)

	h, err = SetupHandler("JSON", "info", buf)
	require.NoError(t, err)
	assert.IsType(t, &slog.JSONHandler{}, h)

	h, err = SetupHandler("xml", "info", buf)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Nil(t, h)
}

func TestSetup(t *testing.T) {
	originalDefault := slog.Default()
	defer slog.SetDefault(originalDefault)

	t.Run("json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "expconfig.log")
		closeFn, err := Setup("json", "debug", path)
		require.NoError(t, err)

		slog.Debug("written to file", "component", "test")
		require.NoError(t, closeFn())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"msg":"written to file"`)
		assert.Contains(t, string(content), `"component":"test"`)
	})

	t.Run("default output", func(t *testing.T) {
		closeFn, err := Setup("text", "info", "")
		require.NoError(t, err)
		assert.NoError(t, closeFn())
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := Setup("xml", "info", "stderr")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("bad output", func(t *testing.T) {
		_, err := Setup("text", "info", "redis://localhost")
		assert.Error(t, err)
	})
}

func TestHandlerTypes(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.IsType(t, &log.Logger{}, SetupHandlerText("info", buf))
	assert.IsType(t, &slog.JSONHandler{}, SetupHandlerJSON("info", buf))
}
