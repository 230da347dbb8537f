// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for development (debug level, ISO8601
// timestamps) and production (JSON, epoch timestamps) and integrates with Fiber.
//
// # Context Awareness
//
// WithRayID extracts the RayID stored by the rayid middleware and attaches it to
// the log entry, so every line written while serving a page can be correlated.
// Middleware wraps that into a request logger for the Fiber app.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Debug("Serving page")
package logger
