// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured logging
// with configurable level and format, and carries request-scoped loggers in a
// context.Context.
package logger
