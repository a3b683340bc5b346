package orderControllers

import (
	"errors"
	"net/http"

	"github.com/ayushrskiaa/Restaurant-Reservation/lifecycle"
	"github.com/gin-gonic/gin"
)

// SendOrderHandler is the checkout entry point used by the menu page.
// It feeds the same lifecycle manager as the history API, so every placed
// order shows up in the customer's history immediately.
func SendOrderHandler(m *lifecycle.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req lifecycle.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill in all required order details!"})
			return
		}
		order, err := m.CreateOrder(c.Request.Context(), req)
		if err != nil {
			var verr *lifecycle.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to place order"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order placed successfully!",
			"order":   order,
		})
	}
}
