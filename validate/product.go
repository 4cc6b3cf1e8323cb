package validate

import (
	"errors"
	"strconv"

	"essence_store/constants"
	"essence_store/model"
	"essence_store/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ProductInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT_FORMAT, err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if input.Category != "" && !utils.IsValidValueOfConstant(input.Category, constants.ProductCategories) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category", errors.New("category outside enum"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateProduct(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.ProductInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT_FORMAT, err)
		}

		if input.Category != "" && !utils.IsValidValueOfConstant(input.Category, constants.ProductCategories) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category", errors.New("category outside enum"))
		}

		c.Locals("inputId", id)
		c.Locals("input", input)
		return c.Next()
	}
}
