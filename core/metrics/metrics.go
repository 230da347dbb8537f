package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the service's Prometheus registry and metrics.
type Collector struct {
	registry     *prometheus.Registry
	pageRequests *prometheus.CounterVec
	sceneTraces  prometheus.Gauge
}

// NewCollector creates a collector with its own registry, so tests and
// multiple apps in one process never collide on registration.
func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		pageRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_page_requests_total",
				Help: "Total number of page requests",
			},
			[]string{"path", "status"},
		),
		sceneTraces: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "orrery_scene_traces",
				Help: "Number of traces in the scene built at startup",
			},
		),
	}

	m.registry.MustRegister(
		m.pageRequests,
		m.sceneTraces,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// SetSceneTraces records the trace count of the scene being served.
func (m *Collector) SetSceneTraces(n int) {
	m.sceneTraces.Set(float64(n))
}

// RecordPageRequest counts one served request.
func (m *Collector) RecordPageRequest(path string, status int) {
	m.pageRequests.WithLabelValues(path, statusLabel(status)).Inc()
}

// Middleware counts every request after the downstream handlers ran.
// Unmatched paths are folded into a single label to bound cardinality.
func (m *Collector) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		path := c.Route().Path
		if status == fiber.StatusNotFound {
			path = "unmatched"
		}
		m.RecordPageRequest(path, status)
		return err
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Collector) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// NewApp builds the standalone metrics app served on the metrics port.
func (m *Collector) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/metrics", m.Handler())
	return app
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
