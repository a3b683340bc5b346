package routes

import (
	reservationControllers "github.com/ayushrskiaa/Restaurant-Reservation/controllers/reservation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupReservationRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.POST("/reservation", reservationControllers.SendReservationHandler(db))
}
