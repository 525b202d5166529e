package handler

import (
	"errors"
	"log"

	"wedding_manager/constants"
	"wedding_manager/database"
	"wedding_manager/helper"
	"wedding_manager/model"
	"wedding_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GiftHandler holds the payment client. Built once at startup.
type GiftHandler struct {
	MP *helper.MercadoPago
}

func NewGiftHandler(mp *helper.MercadoPago) *GiftHandler {
	return &GiftHandler{MP: mp}
}

// GetGifts is the public registry listing.
func GetGifts(c *fiber.Ctx) error {
	sortByPrice := c.Locals("sortByPrice").(string)

	gifts, err := helper.ListGifts(sortByPrice)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(gifts)
}

// PurchaseGifts marks gifts bought, typically after the payment confirmation
// arrives on the front-end.
func PurchaseGifts(c *fiber.Ctx) error {
	input := c.Locals("giftIdsInput").(model.GiftIdsInput)

	purchased, notFound, err := helper.PurchaseGifts(input.GiftIds)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"purchased": purchased,
		"notFound":  notFound,
	})
}

// CreateCheckout hands the eligible gifts to Mercado Pago and returns the
// redirect URL. Gifts are not marked purchased here.
func (h *GiftHandler) CreateCheckout(c *fiber.Ctx) error {
	input := c.Locals("giftIdsInput").(model.GiftIdsInput)

	eligible, notFound, err := helper.CollectCheckoutGifts(input.GiftIds)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if len(eligible) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_VALID_GIFTS, errors.New("no eligible gifts"))
	}

	checkoutUrl, err := h.MP.CreateGiftCheckout(eligible)
	if err != nil {
		log.Printf("mercado pago checkout failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.CHECKOUT_FAILED, err)
	}

	return c.JSON(model.CheckoutResponse{
		CheckoutUrl: checkoutUrl,
		NotFound:    notFound,
	})
}

func CreateGift(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateGiftInput)

	var gift model.Gift
	copier.Copy(&gift, &input)
	gift.Image = &input.Image

	if err := database.DB.Create(&gift).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, gift)
}

func GetGiftsAdmin(c *fiber.Ctx) error {
	filter := new(model.GiftFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	gifts, err := helper.ListGiftsAdmin(*filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, gifts)
}

func GetGiftById(c *fiber.Ctx) error {
	giftId := c.Locals("inputId").(uint)

	var gift model.Gift
	if err := database.DB.First(&gift, giftId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GIFT_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, gift)
}

func UpdateGift(c *fiber.Ctx) error {
	giftId := c.Locals("inputId").(uint)
	input := c.Locals("updateInput").(model.UpdateGiftInput)

	var gift model.Gift
	if err := database.DB.First(&gift, giftId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GIFT_NOT_FOUND, err)
	}

	if input.Title != nil {
		gift.Title = *input.Title
	}
	if input.Description != nil {
		gift.Description = *input.Description
	}
	if input.Price != nil {
		gift.Price = *input.Price
	}
	if input.Image != nil {
		gift.Image = input.Image
	}
	if input.Purchased != nil {
		gift.Purchased = *input.Purchased
	}

	if err := database.DB.Save(&gift).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, gift)
}

func DeleteGift(c *fiber.Ctx) error {
	giftId := c.Locals("inputId").(uint)

	var gift model.Gift
	if err := database.DB.First(&gift, giftId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GIFT_NOT_FOUND, err)
	}

	if err := database.DB.Delete(&gift).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Gift deleted",
	})
}

// GiftImageSignature signs a Cloudinary direct upload for a gift image.
func GiftImageSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Title string `json:"title"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	signature, err := helper.SignGiftUpload(params.Title)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, signature)
}
