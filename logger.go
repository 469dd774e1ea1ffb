// Copyright (c) 2026 Telegram Toys (https://github.com/telegram-toys)
//
// logger.go — Logger interface and noop implementation used internally by
// tljson for structured logging; swap in zerolog, slog, or zap by passing
// a custom implementation to Config.Logger.

package tljson

// Logger is the logging interface used internally by tljson.
// Implement this to route logs to zerolog, slog, zap, etc.
type Logger interface {
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Debug(msg string, keysAndValues ...any)
}

type noopLogger struct{}

func (noopLogger) Info(_ string, _ ...any)  {}
func (noopLogger) Warn(_ string, _ ...any)  {}
func (noopLogger) Error(_ string, _ ...any) {}
func (noopLogger) Debug(_ string, _ ...any) {}
