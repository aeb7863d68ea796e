// Package logger provides a structured logging facility based on Zap.
//
// All logs are written to stderr so that stdout stays reserved for the
// derived feature list.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// The "debug" level selects zap's development config (ISO8601 timestamps),
// any other level the production config.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, logger.NewRunID())
//	log.Info("Extracting features")
package logger
