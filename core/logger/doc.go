// Package logger provides a structured logging facility based on Zap.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// The "debug" level selects Zap's development preset; every other level uses
// the production preset.
//
// # Settings Fields
//
// WithSettings attaches resolved server settings to a logger. The admin secret
// is redacted before it reaches any log sink.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.WithSettings(log, settings)
//	l.Warn("Placeholder admin secret in use")
package logger
