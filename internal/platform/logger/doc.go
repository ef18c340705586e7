// Package logger provides structured logging for the fixture tools.
//
// It utilizes Go's standard library log/slog package to implement structured
// JSON logging with configurable log levels. Loggers travel on the context so
// store and fixture code can log with the caller's attributes attached.
package logger
