package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the page server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// MetricsPort enables a separate Prometheus listener when set.
	MetricsPort string `mapstructure:"metrics_port" default:""`
	// Debug enables verbose error responses and request logging at debug level.
	Debug bool `mapstructure:"debug" default:"false"`
}

// Addr returns the listen address for the page server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// MetricsEnabled reports whether the metrics listener should be started.
func (c Config) MetricsEnabled() bool {
	return c.MetricsPort != "" && c.MetricsPort != c.Port
}

// MetricsAddr returns the listen address for the metrics listener.
func (c Config) MetricsAddr() string {
	return ":" + c.MetricsPort
}
