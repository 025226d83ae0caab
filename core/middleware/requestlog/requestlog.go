package requestlog

import (
	"errors"
	"time"

	"greeting-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware that logs every request once it has been handled.
func New(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		l := logger.WithRayID(logg, c)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", StatusCode(c, err)),
			zap.Duration("latency", time.Since(start)),
		}

		var fe *fiber.Error
		switch {
		case err == nil:
			l.Info("Request completed", fields...)
		case errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError:
			l.Info("Request completed", fields...)
		default:
			l.Error("Request error", append(fields, zap.Error(err))...)
		}
		return err
	}
}

// StatusCode returns the status the response will carry once err reaches the error handler.
func StatusCode(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
