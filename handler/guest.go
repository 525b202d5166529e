package handler

import (
	"errors"

	"wedding_manager/constants"
	"wedding_manager/database"
	"wedding_manager/helper"
	"wedding_manager/model"
	"wedding_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// SearchGuests is the public RSVP lookup. Read-only.
func SearchGuests(c *fiber.Ctx) error {
	response, err := helper.SearchGuests(c.Query("name"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(response)
}

// ConfirmGuests flips attendance for each id, reporting misses structurally.
func ConfirmGuests(c *fiber.Ctx) error {
	input := c.Locals("confirmInput").(model.ConfirmGuestsInput)

	confirmed, notFound, err := helper.ConfirmGuests(input.GuestIds)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if len(confirmed) > 0 {
		var names []string
		database.DB.Model(&model.Guest{}).Where("id IN ?", confirmed).Pluck("name", &names)
		utils.SendRSVPNotification(names)
	}

	return c.JSON(fiber.Map{
		"confirmed": confirmed,
		"notFound":  notFound,
	})
}

func CreateGuest(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateGuestInput)

	if input.GroupId != nil {
		exists, err := helper.GroupExists(*input.GroupId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if !exists {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GROUP_NOT_FOUND, errors.New("group does not exist"))
		}
	}

	var guest model.Guest
	copier.Copy(&guest, &input)

	if err := database.DB.Create(&guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, guest)
}

func GetGuests(c *fiber.Ctx) error {
	filter := new(model.GuestFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Guest{})
	if filter.Confirmed != nil {
		db = db.Where("confirmed = ?", *filter.Confirmed)
	}
	if filter.GroupId != nil {
		db = db.Where("group_id = ?", *filter.GroupId)
	}

	var guests []model.Guest
	if err := db.Order("name asc").Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, guests)
}

func GetGuestById(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(uint)

	var guest model.Guest
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

func UpdateGuest(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(uint)
	input := c.Locals("updateInput").(model.UpdateGuestInput)

	var guest model.Guest
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, err)
	}

	if input.GroupId != nil {
		exists, err := helper.GroupExists(*input.GroupId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if !exists {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GROUP_NOT_FOUND, errors.New("group does not exist"))
		}
		guest.GroupId = input.GroupId
	}

	if input.Name != nil {
		guest.Name = *input.Name
	}
	if input.Confirmed != nil {
		guest.Confirmed = *input.Confirmed
	}
	if input.IsChild != nil {
		guest.IsChild = *input.IsChild
	}

	if err := database.DB.Save(&guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

func DeleteGuest(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(uint)

	var guest model.Guest
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, err)
	}

	if err := database.DB.Delete(&guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Guest deleted",
	})
}
