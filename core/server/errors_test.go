package server_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"orrery/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(debug bool) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler(debug, zap.NewNop())})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("template exploded")
	})
	return app
}

func body(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestErrorHandler_NotFound(t *testing.T) {
	code, _ := body(t, newApp(false), "/missing")
	assert.Equal(t, 404, code)
}

func TestErrorHandler_HidesInternalErrors(t *testing.T) {
	code, msg := body(t, newApp(false), "/boom")
	assert.Equal(t, 500, code)
	assert.Equal(t, "Internal Server Error", msg)
}

func TestErrorHandler_DebugShowsInternalErrors(t *testing.T) {
	code, msg := body(t, newApp(true), "/boom")
	assert.Equal(t, 500, code)
	assert.Equal(t, "template exploded", msg)
}
