// Package logger provides structured logging for better-axios using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
//	log := logger.NewDefault("my-app")
//	log.Info("request settled", logger.Fields("status", 200))
//
// A Nop logger is available for callers that want the client silent:
//
//	cfg.Logger = logger.Nop()
package logger
