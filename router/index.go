package router

import (
	"wedding_manager/config"
	"wedding_manager/handler"
	"wedding_manager/helper"
	"wedding_manager/middleware"
	"wedding_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, cfg config.AppConfig, mp *helper.MercadoPago) {
	authHandler := handler.NewAuthHandler(cfg)
	giftHandler := handler.NewGiftHandler(mp)
	secret := []byte(cfg.JWTSecret)

	auth := app.Group("/auth", logger.New())
	auth.Post("/login", validate.Login(), authHandler.Login)

	guests := app.Group("/guests", logger.New())
	guests.Get("/search", handler.SearchGuests)
	guests.Post("/confirm", validate.ConfirmGuests(), handler.ConfirmGuests)

	guestAdmin := guests.Group("/admin", middleware.Protected(secret))
	guestAdmin.Get("/stats", handler.GetGuestStats)
	guestAdmin.Post("/groups", validate.CreateGroup(), handler.CreateGroup)
	guestAdmin.Get("/groups", handler.GetGroups)
	guestAdmin.Get("/groups/:groupId/qr", validate.GetById("groupId"), handler.GetGroupQR)
	guestAdmin.Get("/groups/:groupId", validate.GetById("groupId"), handler.GetGroupById)
	guestAdmin.Put("/groups/:groupId", validate.UpdateGroup("groupId"), handler.UpdateGroup)
	guestAdmin.Delete("/groups/:groupId", validate.GetById("groupId"), handler.DeleteGroup)
	guestAdmin.Post("/", validate.CreateGuest(), handler.CreateGuest)
	guestAdmin.Get("/", handler.GetGuests)
	guestAdmin.Get("/:guestId", validate.GetById("guestId"), handler.GetGuestById)
	guestAdmin.Put("/:guestId", validate.UpdateGuest("guestId"), handler.UpdateGuest)
	guestAdmin.Delete("/:guestId", validate.GetById("guestId"), handler.DeleteGuest)

	gifts := app.Group("/gifts", logger.New())
	gifts.Get("/", validate.SortByPrice(), handler.GetGifts)
	gifts.Post("/purchase", validate.GiftIds(), handler.PurchaseGifts)
	gifts.Post("/checkout", validate.GiftIds(), giftHandler.CreateCheckout)

	giftAdmin := gifts.Group("/admin", middleware.Protected(secret))
	giftAdmin.Get("/stats", handler.GetGiftStats)
	giftAdmin.Post("/image-signature", handler.GiftImageSignature)
	giftAdmin.Post("/", validate.CreateGift(), handler.CreateGift)
	giftAdmin.Get("/", handler.GetGiftsAdmin)
	giftAdmin.Get("/:giftId", validate.GetById("giftId"), handler.GetGiftById)
	giftAdmin.Put("/:giftId", validate.UpdateGift("giftId"), handler.UpdateGift)
	giftAdmin.Delete("/:giftId", validate.GetById("giftId"), handler.DeleteGift)
}
