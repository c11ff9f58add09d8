package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// MethodOverride promotes a POST carrying a _method form or query value to
// the verb it names, so plain HTML forms can reach the DELETE routes.
// Must be registered before the routes.
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost {
			override := c.FormValue("_method")
			if override == "" {
				override = c.Query("_method")
			}
			switch strings.ToUpper(override) {
			case fiber.MethodDelete, fiber.MethodPut, fiber.MethodPatch:
				c.Method(strings.ToUpper(override))
			}
		}
		return c.Next()
	}
}
