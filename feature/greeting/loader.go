package greeting

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes the greeting to the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the greeting feature for the given port.
func NewFeature(port int, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(port, logger))}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "greeting"
}

// IsEnabled reports whether the feature is active. The greeting is always on.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the greeting route.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
