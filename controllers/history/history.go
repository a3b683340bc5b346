package historyControllers

import (
	"errors"
	"net/http"

	"github.com/ayushrskiaa/Restaurant-Reservation/lifecycle"
	"github.com/ayushrskiaa/Restaurant-Reservation/models"
	"github.com/gin-gonic/gin"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status      *models.OrderStatus `json:"status"`
	PaymentDone *bool               `json:"paymentDone"`
}

// -------- Helpers --------

// respondError maps lifecycle errors onto the HTTP envelope. Storage
// failures deliberately get a generic message.
func respondError(c *gin.Context, err error) {
	var verr *lifecycle.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Error()})
	case errors.Is(err, lifecycle.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
	case errors.Is(err, lifecycle.ErrCannotCancel):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Order cannot be cancelled"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong, please try again"})
	}
}

// -------- Handlers --------

// CreateOrderHandler places a new order and records it in the history.
func CreateOrderHandler(m *lifecycle.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req lifecycle.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill in all required order details!"})
			return
		}
		order, err := m.CreateOrder(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		broadcastOrderEvent("created", order)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order placed successfully and added to history!",
			"order":   order,
		})
	}
}

// GetUserOrderHistoryHandler lists a customer's orders by phone number.
func GetUserOrderHistoryHandler(m *lifecycle.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		phoneNumber := c.Param("phoneNumber")
		orders, err := m.OrdersForPhone(c.Request.Context(), phoneNumber)
		if err != nil {
			respondError(c, err)
			return
		}
		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No orders found."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GetOrderDetailsHandler returns a single order by id or order reference.
func GetOrderDetailsHandler(m *lifecycle.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := m.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// UpdateOrderStatusHandler applies a status and/or payment-done change.
func UpdateOrderStatusHandler(m *lifecycle.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
			return
		}

		var upd lifecycle.StatusUpdate
		if req.Status != nil {
			upd.HasStatus = true
			upd.Status = *req.Status
		}
		if req.PaymentDone != nil {
			upd.HasPaymentDone = true
			upd.PaymentDone = *req.PaymentDone
		}

		order, err := m.UpdateOrder(c.Request.Context(), c.Param("id"), upd)
		if err != nil {
			respondError(c, err)
			return
		}
		broadcastOrderEvent("updated", order)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order updated successfully",
			"order":   order,
		})
	}
}

// CancelOrderHandler cancels an order that has not yet reached a terminal state.
func CancelOrderHandler(m *lifecycle.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := m.CancelOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		broadcastOrderEvent("cancelled", order)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order cancelled successfully",
			"order":   order,
		})
	}
}

// ReorderHandler clones a previous order into a fresh one.
func ReorderHandler(m *lifecycle.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := m.Reorder(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		broadcastOrderEvent("created", order)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Reorder placed successfully!",
			"order":   order,
		})
	}
}

// GetStatisticsHandler returns the dashboard aggregates.
func GetStatisticsHandler(m *lifecycle.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := m.Statistics(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
	}
}

// GetAllOrdersHandler lists every order, optionally filtered to one day
// via ?date=YYYY-MM-DD.
func GetAllOrdersHandler(m *lifecycle.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := m.ListOrders(c.Request.Context(), c.Query("date"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}
