package middleware

import (
	"errors"
	"strings"

	"wedding_manager/constants"
	"wedding_manager/helper"
	"wedding_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected gates the admin routes behind the shared bearer token. The
// signing secret is injected at route setup, not read per request.
func Protected(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ""
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		claims, err := helper.ParseAdminToken(secret, token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("admin", claims)
		return c.Next()
	}
}
