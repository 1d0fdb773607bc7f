package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the request and response header carrying the RayID.
	HeaderName = "X-Ray-ID"
	// LocalKey is the Fiber locals key holding the RayID.
	LocalKey = "ray_id"
)

// New returns middleware that assigns a RayID to every request.
// An incoming X-Ray-ID header is reused so IDs survive proxies.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}

// FromContext returns the RayID of the request, or "" when none was assigned.
func FromContext(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalKey).(string)
	return id
}
