// Package logger provides structured logging functionality for the application.
//
// It builds JSON loggers on the standard library log/slog package with a
// configurable level, and carries request-scoped loggers through
// context.Context so every layer logs with the request's trace id.
package logger
