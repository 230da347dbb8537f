package cmd

import (
	"io"
	"net/http/httptest"
	"testing"

	"orrery/core/metrics"
	"orrery/core/middleware/rayid"
	"orrery/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApp(t *testing.T) {
	logg := zap.NewNop()
	svc, err := buildService(logg)
	require.NoError(t, err)

	collector := metrics.NewCollector()
	app, err := newApp(server.Config{Port: "8080"}, logg, svc, collector)
	require.NoError(t, err)

	t.Run("Index", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(rayid.Header))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, svc.Page(), body)
	})

	t.Run("MetricsNotOnPageApp", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("RequestsCounted", func(t *testing.T) {
		resp, err := collector.NewApp().Test(httptest.NewRequest("GET", "/metrics", nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `orrery_page_requests_total{path="/",status="2xx"} 1`)
	})
}
