package routes

import (
	orderControllers "github.com/ayushrskiaa/Restaurant-Reservation/controllers/order"
	"github.com/ayushrskiaa/Restaurant-Reservation/lifecycle"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(api *gin.RouterGroup, m *lifecycle.Manager) {
	// Checkout entry point used by the menu page
	api.POST("/Orders", orderControllers.SendOrderHandler(m))
}
