// Package logging provides structured logging for the risksurface TUI.
//
// This package wraps Go's log/slog to produce JSON-formatted logs. Because
// the tour owns the terminal while running, logs go to a file (or nowhere)
// rather than to stdout or stderr; the file can be tailed from another
// terminal while debugging.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Context propagation (component, route, revision)
//   - Discard sink when logging is disabled
//   - Size-based log rotation with optional gzip compression
//   - Aggregation and filtering across the live log and its backups
//   - Export to JSON, text, or CSV formats
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. The [Logger] type
// uses Go's slog internally which is designed for concurrent access. The
// [RotatingWriter] type uses a mutex to protect file operations during
// rotation. Child loggers created via With* methods share the underlying
// writer safely.
//
// # Basic Usage
//
// Create a logger writing to a file:
//
//	logger, err := logging.NewLogger("/path/to/risksurface.log", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Debug("detailed info", "key", "value")
//	logger.Info("operation completed", "duration_ms", 150)
//
// # Context Propagation
//
// Create child loggers with persistent context attributes:
//
//	tuiLogger := logger.WithComponent("tui")
//	routeLogger := tuiLogger.WithRoute("/projects")
//
//	// All logs from routeLogger include component and route
//	routeLogger.Info("view mounted")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"view mounted","component":"tui","route":"/projects"}
package logging
