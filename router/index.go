package router

import (
	"essence_store/handler"
	"essence_store/middleware"
	"essence_store/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	admin := v1.Group("/admin")
	admin.Post("/login", handler.Login)
	admin.Post("/logout", handler.Logout)
	admin.Get("/me", middleware.Protected(), handler.Me)
	admin.Get("/stats", middleware.Protected(), handler.GetAdminStats)
	admin.Get("/orders", middleware.Protected(), handler.GetOrders)
	admin.Get("/orders/feed", middleware.Protected(), websocket.New(handler.OrderFeed))
	admin.Get("/orders/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	admin.Put("/orders/:orderId", middleware.Protected(), validate.GetById("orderId"), validate.UpdateOrder(), handler.UpdateOrder)
	admin.Get("/orders/:orderId/invoice", middleware.Protected(), validate.GetById("orderId"), handler.DownloadInvoiceById)

	order := v1.Group("/orders", logger.New())
	order.Post("/", validate.CreateOrder(), handler.CreateOrder)
	order.Post("/track", validate.TrackOrder(), handler.TrackOrder)
	order.Get("/:orderNumber/invoice", handler.DownloadInvoice)

	product := v1.Group("/products", logger.New())
	product.Get("/", handler.GetProducts)
	product.Get("/:productId", validate.GetById("productId"), handler.GetProductById)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.UpdateProduct("productId"), handler.UpdateProduct)
	product.Delete("/:productId", middleware.Protected(), validate.GetById("productId"), handler.DeleteProduct)
	product.Post("/:productId/image", middleware.Protected(), validate.GetById("productId"), handler.UploadProductImage)

	contact := v1.Group("/contact", logger.New())
	contact.Post("/", validate.CreateContact(), handler.CreateContact)
	contact.Get("/", middleware.Protected(), handler.GetContacts)
	contact.Get("/:messageId", middleware.Protected(), validate.GetById("messageId"), handler.GetContactById)
	contact.Put("/:messageId", middleware.Protected(), validate.UpdateContact("messageId"), handler.UpdateContact)
	contact.Delete("/:messageId", middleware.Protected(), validate.GetById("messageId"), handler.DeleteContact)
}
