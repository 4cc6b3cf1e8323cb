package middleware

import (
	"errors"
	"strings"

	"essence_store/constants"
	"essence_store/helper"
	"essence_store/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected guards the admin endpoints. The token arrives either in the
// HTTPOnly cookie set at login or as an Authorization bearer header.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("admin_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
		}

		c.Locals("admin", jwtToken)
		return c.Next()
	}
}
