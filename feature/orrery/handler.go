package orrery

import (
	"orrery/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the orrery page.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the page route. It is the only route of the app.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
}

// HandleIndex serves the pre-rendered page.
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Debug("Serving orrery page")

	c.Type("html", "utf-8")
	return c.Send(h.service.Page())
}
