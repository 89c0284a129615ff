// Package logging configures the process-wide slog logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/atlanticdynamic/expconfig/internal/logging/writers"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrUnsupportedFormat = errors.New("unsupported log format")

// SetupHandlerText configures a text slog handler with the provided writer and log level
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	reportCaller := false
	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		reportTimestamp = true
		lvl = log.DebugLevel
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "info":
		lvl = log.InfoLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and log level
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	reportCaller := false
	var level slog.Level

	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		level = slog.LevelDebug
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     level,
		AddSource: reportCaller,
	})
}

// SetupHandler returns a handler for the named format ("text" or "json")
func SetupHandler(format, logLevel string, writer io.Writer) (slog.Handler, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return SetupHandlerText(logLevel, writer), nil
	case FormatJSON:
		return SetupHandlerJSON(logLevel, writer), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Setup installs a default logger writing to output in the given format.
// The returned close function releases the output and should be deferred.
func Setup(format, logLevel, output string) (func() error, error) {
	if output == "" {
		output = "stderr"
	}

	out, err := writers.Open(output)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output: %w", err)
	}

	handler, err := SetupHandler(format, logLevel, out)
	if err != nil {
		_ = out.Close()
		return nil, err
	}

	slog.SetDefault(slog.New(handler))
	return out.Close, nil
}
