package rayid

import (
	"greeting-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// HeaderName is the request and response header carrying the RayID.
const HeaderName = "X-Ray-ID"

// New returns a middleware that assigns a RayID to every request.
// A RayID sent by the client is kept, otherwise a new UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(c.Get(HeaderName))
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
