package main

import (
	"log"

	"wedding_manager/config"
	"wedding_manager/database"
	"wedding_manager/helper"
	"wedding_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.MustLoad()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
	}))

	database.ConnectDB()

	mp := helper.NewMercadoPago(cfg)
	router.SetupRoutes(app, cfg, mp)

	port := config.Config("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
