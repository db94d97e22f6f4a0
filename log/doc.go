// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable output formats, minimum levels, timestamp
// layouts, and optional caller information, applied at logger creation time
// using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithPretty(true))
//	logger.Info("session started", slog.String("source", path))
//
// A package-level default logger writes to stderr and is reconfigured with
// [Config]; the context-unaware functions ([Debug], [Info], ...) forward to
// their context-aware counterparts using [DefaultContextProvider].
//
// Two machine formats are supported, [FormatJSON] (default) and [FormatText];
// the text format optionally renders colorized output ([WithPretty]).
package log
