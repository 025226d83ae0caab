package greeting

import (
	"greeting-server/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the greeting.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the greeting route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleGreeting)
}

// HandleGreeting answers with the plain-text greeting. Query and headers are ignored.
func (h *Handler) HandleGreeting(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Debug("Serving greeting")
	return c.SendString(h.service.Greeting())
}
