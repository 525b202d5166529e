package validate

import (
	"errors"
	"strconv"

	"wedding_manager/constants"
	"wedding_manager/model"
	"wedding_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GiftIds parses the id-list body shared by the purchase and checkout routes.
func GiftIds() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.GiftIdsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("giftIdsInput", input)
		return c.Next()
	}
}

func SortByPrice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sortByPrice := c.Query("sortByPrice")
		if sortByPrice != "" && sortByPrice != "asc" && sortByPrice != "desc" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("sortByPrice must be asc or desc"))
		}

		c.Locals("sortByPrice", sortByPrice)
		return c.Next()
	}
}

func CreateGift() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateGiftInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateGift(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateGiftInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}
