// Copyright (c) 2026 Book Alchemy. All rights reserved.

/*
Package middleware holds the handlers that wrap every catalog route.

Order in the server chain: RequestID, StructuredLogger, chi Timeout,
RateLimit, PanicRecovery, CORS. Rejections are written with
[respond.Error] so they share the envelope of every other error.
*/
package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/apperr"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/constants"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/ctxutil"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/respond"
)

// RequestID keeps the caller's X-Request-ID or mints a UUID v7, stores it in
// the context and echoes it in the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			id := request.Header.Get(constants.HeaderXRequestID)
			if id == "" {
				id = newRequestID()
			}

			writer.Header().Set(constants.HeaderXRequestID, id)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithRequestID(request.Context(), id)))
		})
	}
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// statusWriter remembers the status code a handler wrote.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// StructuredLogger puts a request-scoped logger in the context and writes one
// http_request_finished line per request, at WARN for 4xx and ERROR for 5xx.
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			started := time.Now()
			scoped := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			recorder := &statusWriter{ResponseWriter: writer, status: http.StatusOK}
			ctx := ctxutil.WithLogger(request.Context(), scoped)
			next.ServeHTTP(recorder, request.WithContext(ctx))

			scoped.Log(ctx, levelFor(recorder.status), "http_request_finished",
				slog.Int("status", recorder.status),
				slog.Int64("latency_ms", time.Since(started).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// PanicRecovery turns a handler panic into a logged 500 INTERNAL_ERROR.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func PanicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "panic_recovered",
					slog.Any("error", recovered),
					slog.String("stack", string(debug.Stack())),
				)
				respond.Error(writer, request, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// AppConfig is the part of the configuration CORS reads.
type AppConfig interface {
	IsDevelopment() bool
}

// CORS reflects the request origin when it is in allowedOrigins, or for any
// origin in development. Preflight requests stop here with 204.
func CORS(cfg AppConfig, allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin != "" && (cfg.IsDevelopment() || slices.Contains(allowedOrigins, origin)) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Request-ID")
				header.Set("Access-Control-Expose-Headers", "X-Request-ID, Location")
				header.Set("Access-Control-Max-Age", "300")
				header.Add("Vary", constants.HeaderOrigin)
			}

			if origin != "" && request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RealIP returns the client address: X-Real-IP, then the first
// X-Forwarded-For hop, then the connection's remote host.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}
	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if host, _, err := net.SplitHostPort(request.RemoteAddr); err == nil {
		return host
	}
	return request.RemoteAddr
}
