// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured at creation time with functional options
// controlling level, output format, timestamp layout, caller information,
// and colorized pretty printing:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithPretty(true))
//	logger.Info("fixture parsed", slog.Int("files", 2))
//
// The zero value Logger silently discards all messages, so library code can
// hold a Logger unconditionally and let callers opt in to tracing.
//
// A package-level default logger writing to stderr backs the top-level
// Debug, Info, Warn, and Error functions; [Config] reconfigures it, which
// the CLI does as early as flag parsing allows.
package log
