// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development
// vs production). Every command invocation is tagged with a run identifier so that the log
// lines of one batch run over a dataset can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (machine readable) or console (default for the CLI)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, logger.NewRunID())
//	log.Info("Loading dataset", zap.String("base", base))
package logger
