package handler

import (
	"errors"
	"fmt"

	"wedding_manager/config"
	"wedding_manager/constants"
	"wedding_manager/database"
	"wedding_manager/helper"
	"wedding_manager/model"
	"wedding_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateGroup(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateGuestGroupInput)

	group := model.GuestGroup{Name: input.Name}
	if err := database.DB.Create(&group).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, group)
}

func GetGroups(c *fiber.Ctx) error {
	var groups []model.GuestGroup
	if err := database.DB.Preload("Guests").Order("name asc").Find(&groups).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, groups)
}

func GetGroupById(c *fiber.Ctx) error {
	groupId := c.Locals("inputId").(uint)

	var group model.GuestGroup
	if err := database.DB.Preload("Guests").First(&group, groupId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GROUP_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, group)
}

func UpdateGroup(c *fiber.Ctx) error {
	groupId := c.Locals("inputId").(uint)
	input := c.Locals("updateInput").(model.UpdateGuestGroupInput)

	var group model.GuestGroup
	if err := database.DB.First(&group, groupId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GROUP_NOT_FOUND, err)
	}

	if input.Name != nil {
		group.Name = *input.Name
	}

	if err := database.DB.Save(&group).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, group)
}

// DeleteGroup removes the group; its members stay and become individual
// guests.
func DeleteGroup(c *fiber.Ctx) error {
	groupId := c.Locals("inputId").(uint)

	if err := helper.DeleteGroup(groupId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GROUP_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Group deleted",
	})
}

// GetGroupQR renders the group's RSVP link as a printable QR code.
func GetGroupQR(c *fiber.Ctx) error {
	groupId := c.Locals("inputId").(uint)

	var group model.GuestGroup
	if err := database.DB.First(&group, groupId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GROUP_NOT_FOUND, err)
	}

	frontendURL := config.Config("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:8080"
	}

	link := fmt.Sprintf("%s/rsvp?groupId=%d", frontendURL, group.ID)
	png, err := utils.GenerateQRCode(link, 512)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
