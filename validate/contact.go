package validate

import (
	"errors"
	"strconv"

	"essence_store/constants"
	"essence_store/model"
	"essence_store/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateContact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ContactInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT_FORMAT, err)
		}

		required := []struct {
			name  string
			value string
		}{
			{"name", input.Name},
			{"email", input.Email},
			{"message", input.Message},
		}
		for _, field := range required {
			if field.value == "" {
				return utils.ErrorResponse(c, fiber.StatusBadRequest,
					"Missing required field: "+field.name, errors.New("missing "+field.name))
			}
		}

		if !utils.IsValidEmail(input.Email) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email format", errors.New("bad email"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateContact(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateContactInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT_FORMAT, err)
		}

		c.Locals("inputId", id)
		c.Locals("input", input)
		return c.Next()
	}
}
