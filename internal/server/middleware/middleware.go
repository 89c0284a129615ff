// Package middleware holds the request middlewares applied to every
// experiment config route.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	supervisorHeaders "github.com/robbyt/go-supervisor/runnables/httpserver/middleware/headers"
)

// HeaderRequestID carries the request identifier on requests and responses
const HeaderRequestID = "X-Request-Id"

// RequestID echoes a well-formed incoming X-Request-Id, or assigns a new
// random one, on the response
func RequestID() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		id := rp.Request().Header.Get(HeaderRequestID)
		if _, err := uuid.FromString(id); err != nil {
			id = newRequestID()
		}
		rp.Writer().Header().Set(HeaderRequestID, id)
		rp.Next()
	}
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}

// StaticHeaders sets caching and content sniffing headers on every response.
// The front-end should always fetch the current configuration.
func StaticHeaders() httpserver.HandlerFunc {
	return supervisorHeaders.NewWithOperations(
		supervisorHeaders.WithSet(http.Header{
			"Cache-Control":          []string{"no-cache"},
			"X-Content-Type-Options": []string{"nosniff"},
		}),
		supervisorHeaders.WithRemove("Server", "X-Powered-By"),
	)
}

// RequestLogger logs one line per request. Client errors are logged at warn
// and server errors at error level.
func RequestLogger(logger *slog.Logger) httpserver.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.WithGroup("http")

	return func(rp *httpserver.RequestProcessor) {
		start := time.Now()
		rp.Next()

		r := rp.Request()
		rw := rp.Writer()

		status := rw.Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger.LogAttrs(r.Context(), level, "HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", rw.Header().Get(HeaderRequestID)),
			slog.String("remote_addr", r.RemoteAddr),
		)
	}
}

// Chain returns the standard middleware stack in execution order
func Chain(logger *slog.Logger) []httpserver.HandlerFunc {
	return []httpserver.HandlerFunc{
		RequestID(),
		RequestLogger(logger),
		StaticHeaders(),
	}
}
