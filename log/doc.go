// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package adds a Trace level below Debug, configurable output format
// (text, JSON, colorized text), timestamp layout, and caller information,
// all applied with functional options at logger creation time.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("render complete", slog.Int("nodes", n))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// A package-level default logger writes to stderr and is reconfigured
// with [Config]; the zero-valued Logger discards all messages, so library
// code can log unconditionally through an optional logger field.
package log
