package main

import (
	"log"

	"essence_store/config"
	"essence_store/database"
	"essence_store/handler"
	"essence_store/helper"
	"essence_store/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // product image uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	handler.StartNotificationWorker()
	helper.StartStatsScheduler()
	helper.StartDigestScheduler()

	router.SetupRoutes(app)
	if err := app.Listen(":" + config.ConfigOr("PORT", "8002")); err != nil {
		helper.StopStatsScheduler()
		helper.StopDigestScheduler()
		log.Fatal(err)
	}
}
