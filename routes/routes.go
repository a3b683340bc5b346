package routes

import (
	"github.com/ayushrskiaa/Restaurant-Reservation/lifecycle"
	"github.com/ayushrskiaa/Restaurant-Reservation/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all /api/v1 route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, uploadsDir string) {
	manager := lifecycle.NewManager(storage.NewOrders(db))

	api := r.Group("/api/v1")

	SetupOrderRoutes(api, manager)
	SetupHistoryRoutes(api, manager)
	SetupProductRoutes(api, db, uploadsDir)
	SetupReservationRoutes(api, db)
}
