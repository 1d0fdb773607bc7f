// Package logger provides a structured logging facility based on Zap.
//
// The plugin reports through two severities: informational lines (parse summary,
// per-entry precache progress) and errors (manifest unavailable, rejected entries).
// Everything else in the application logs through the same logger.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default, colored levels) or json
//   - Output: stderr, stdout or a file path
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Precaching items", zap.Int("count", 12))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Activation failed", zap.Error(err))
package logger
