package handler

import (
	"wedding_manager/constants"
	"wedding_manager/helper"
	"wedding_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetGuestStats(c *fiber.Ctx) error {
	stats, err := helper.GuestStats()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

func GetGiftStats(c *fiber.Ctx) error {
	stats, err := helper.GiftStats()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
