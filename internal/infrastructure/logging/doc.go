// Package logging provides structured logging for the gateway.
//
// It wraps log/slog with JSON (production) or text (development) output,
// level filtering and default service/version fields on every entry.
//
// Logging is configured via config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// Usage:
//
//	logger := logging.New(cfg.Logging, version)
//	logger.Info("poll complete", "applied", 118)
//
// Never log the device password, MQTT credentials or tokens.
package logging
