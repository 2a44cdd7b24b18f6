package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	adminIdHeader   = "X-Admin-Id"
	adminNameHeader = "X-Admin-Name"

	AdminIdKey   = "adminId"
	AdminNameKey = "adminName"
)

// Identity pulls the caller's uid and display name from the headers the
// upstream gateway sets after authenticating the session. The gateway has
// already verified the caller may reach this service; no further
// authorization happens here.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminId := c.Get(adminIdHeader)
		if adminId == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":  "UNAUTHORIZED",
				"error": "missing admin identity",
			})
		}

		c.Locals(AdminIdKey, adminId)
		c.Locals(AdminNameKey, c.Get(adminNameHeader))

		return c.Next()
	}
}

// AdminId reads the caller uid stored by Identity.
func AdminId(c *fiber.Ctx) string {
	if v, ok := c.Locals(AdminIdKey).(string); ok {
		return v
	}
	return ""
}

// AdminName reads the caller display name stored by Identity.
func AdminName(c *fiber.Ctx) string {
	if v, ok := c.Locals(AdminNameKey).(string); ok {
		return v
	}
	return ""
}
