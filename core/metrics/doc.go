// Package metrics exposes Prometheus metrics for the page server.
//
// Metrics are kept off the page app: NewApp builds a separate Fiber app serving
// /metrics, started by the start command only when server.metrics_port is set.
package metrics
