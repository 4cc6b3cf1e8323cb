package validate

import (
	"errors"

	"essence_store/constants"
	"essence_store/model"
	"essence_store/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder rejects a malformed checkout before anything is persisted.
// Missing fields name the offending field in the error string.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT_FORMAT, err)
		}

		required := []struct {
			name  string
			value string
		}{
			{"customerName", input.CustomerName},
			{"customerEmail", input.CustomerEmail},
			{"customerPhone", input.CustomerPhone},
			{"address", input.Address},
		}
		for _, field := range required {
			if field.value == "" {
				return utils.ErrorResponse(c, fiber.StatusBadRequest,
					"Missing required field: "+field.name, errors.New("missing "+field.name))
			}
		}

		if !utils.IsValidEmail(input.CustomerEmail) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email format", errors.New("bad email"))
		}

		if len(input.Items) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				"Order must have at least one item", errors.New("empty items"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// TrackOrder requires both lookup keys; the handler never reveals which one
// failed to match.
func TrackOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.TrackOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT_FORMAT, err)
		}

		if input.OrderNumber == "" || input.Email == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest,
				"Order number and email are required", errors.New("missing lookup keys"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// UpdateOrder checks the enum fields of the admin's partial update. Absent
// fields pass through untouched, there is no transition table.
func UpdateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT_FORMAT, err)
		}

		if input.Status != nil && !utils.IsValidValueOfConstant(*input.Status, constants.OrderStatuses) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, errors.New("status outside enum"))
		}
		if input.PaymentStatus != nil && !utils.IsValidValueOfConstant(*input.PaymentStatus, constants.PaymentStatuses) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid payment status", errors.New("payment status outside enum"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}
