// Package logger provides structured logging for unic using zerolog.
//
// The filter owns stdout for its data, so loggers write to stderr by default
// and stay silent (level "disabled") until a level is configured.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("collapse")
//	log.Debug("pass complete", logger.Fields("runs", 3))
package logger
