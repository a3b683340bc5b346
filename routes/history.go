package routes

import (
	historyControllers "github.com/ayushrskiaa/Restaurant-Reservation/controllers/history"
	"github.com/ayushrskiaa/Restaurant-Reservation/lifecycle"
	"github.com/gin-gonic/gin"
)

func SetupHistoryRoutes(api *gin.RouterGroup, m *lifecycle.Manager) {
	history := api.Group("/orderHistory")
	{
		// Place a new order into the history
		history.POST("/create", historyControllers.CreateOrderHandler(m))

		// Customer-facing history by phone number
		history.GET("/user/:phoneNumber", historyControllers.GetUserOrderHistoryHandler(m))

		// Single order by id or order reference
		history.GET("/details/:id", historyControllers.GetOrderDetailsHandler(m))

		// Reorder a previous order
		history.POST("/reorder/:id", historyControllers.ReorderHandler(m))

		// Cancel an order that is still in flight
		history.PUT("/cancel/:id", historyControllers.CancelOrderHandler(m))

		// Update status and/or payment-done flag
		history.PUT("/status/:id", historyControllers.UpdateOrderStatusHandler(m))

		// Dashboard aggregates
		history.GET("/statistics", historyControllers.GetStatisticsHandler(m))

		// All orders, optionally ?date=YYYY-MM-DD
		history.GET("/all", historyControllers.GetAllOrdersHandler(m))

		// Excel download of the order book
		history.GET("/export-excel", historyControllers.ExportOrdersToExcel(m))

		// Live order feed for the admin dashboard
		history.GET("/ws", historyControllers.OrderWebSocketHandler)
	}
}
