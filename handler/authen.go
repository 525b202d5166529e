package handler

import (
	"crypto/subtle"
	"errors"

	"wedding_manager/config"
	"wedding_manager/constants"
	"wedding_manager/helper"
	"wedding_manager/model"
	"wedding_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler holds the shared admin credential and signing secret, built
// once at startup.
type AuthHandler struct {
	adminPassword []byte
	jwtSecret     []byte
}

func NewAuthHandler(cfg config.AppConfig) *AuthHandler {
	return &AuthHandler{
		adminPassword: []byte(cfg.AdminPassword),
		jwtSecret:     []byte(cfg.JWTSecret),
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	if subtle.ConstantTimeCompare([]byte(input.Password), h.adminPassword) != 1 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match"))
	}

	token, err := helper.GenerateAdminToken(h.jwtSecret)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(model.LoginResponse{
		AccessToken: token,
		ExpiresIn:   constants.TOKEN_TTL_SECOND,
		TokenType:   constants.TOKEN_TYPE,
	})
}
