package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	auth := app.Group("/auth", logger.New())
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	orders := app.Group("/orders", logger.New())
	orders.Get("/", handler.GetOrders)
	orders.Post("/", validate.PlaceOrder(), handler.PlaceOrder)
	orders.Post("/last-hour-orders", validate.LastHourOrders(), handler.GetLastHourOrders)
	orders.Put("/:id/status", validate.GetById("id"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)

	dashboard := app.Group("/dashboard", logger.New())
	dashboard.Get("/metrics", handler.GetDashboardMetrics)

	tables := app.Group("/tables", logger.New())
	tables.Get("/", handler.GetTables)
	tables.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	tables.Get("/:id", validate.GetById("id"), handler.GetTable)
	tables.Get("/:id/qr", validate.GetById("id"), handler.GetTableQR)
	tables.Put("/:id", middleware.Protected(), validate.GetById("id"), validate.UpdateTable(), handler.UpdateTable)
	tables.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteTable)

	menu := app.Group("/menu-items", logger.New())
	menu.Get("/", handler.GetMenuItems)
	menu.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Post("/upload-signature", middleware.Protected(), handler.GenerateUploadSignature)
	menu.Get("/:id", validate.GetById("id"), handler.GetMenuItem)
	menu.Put("/:id", middleware.Protected(), validate.GetById("id"), validate.UpdateMenuItem(), handler.UpdateMenuItem)
	menu.Post("/:id/image", middleware.Protected(), validate.GetById("id"), handler.UploadMenuItemImage)
	menu.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteMenuItem)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/orders", websocket.New(handler.OrdersWebsocket))
}
