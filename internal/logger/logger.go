// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog with the constructors and context helpers the
// user API uses everywhere: a stdout JSON logger for the server process, a
// no-op logger for tests, and request-scoped retrieval via FromRequest and
// FromContext.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Warn,
// Error, Fatal, ...) is available on *Logger without re-export shims.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so application packages depend on one type
// while keeping access to every zerolog method.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process-wide *Logger tagged with the given service
// name. Entries are JSON on stdout and carry:
//
//   - "service": the service name, for filtering in log aggregation;
//   - "time": an RFC3339 timestamp;
//   - "func": the fully-qualified name of the calling function, which is
//     easier to grep for than the default file:line caller format.
//
// The global zerolog level is forced to Debug so nothing is filtered at the
// source; downstream collectors decide what to keep.
func NewLogger(service string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zl := zerolog.New(os.Stdout).With().
		Str("service", service).
		Timestamp().
		Caller().
		Logger()

	return &Logger{zl}
}

// Nop returns a *Logger that drops everything written to it. Tests pass it
// wherever a constructor demands a logger.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies the receiver into a fresh *Logger. The child inherits
// every context field of the parent and can be enriched (for example with a
// trace ID) without the extra fields leaking back into the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped *Logger that middleware attached to
// r's context. See FromContext for the fallback behavior.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the *Logger stored in ctx via zerolog's WithContext.
// When ctx carries no logger, zerolog hands back its global logger instead,
// so the result is never nil and is always safe to log through.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
