package server_test

import (
	"testing"

	"orrery/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_MetricsEnabled(t *testing.T) {
	tests := []struct {
		name        string
		port        string
		metricsPort string
		want        bool
	}{
		{"Disabled", "8080", "", false},
		{"Separate", "8080", "9090", true},
		{"SamePort", "8080", "8080", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port, MetricsPort: tt.metricsPort}
			assert.Equal(t, tt.want, c.MetricsEnabled())
		})
	}
}

func TestConfig_Addr(t *testing.T) {
	c := server.Config{Port: "8080", MetricsPort: "9090"}
	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, ":9090", c.MetricsAddr())
}
