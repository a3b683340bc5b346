package reservationControllers

import (
	"net/http"
	"regexp"

	"github.com/ayushrskiaa/Restaurant-Reservation/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var reservationPhonePattern = regexp.MustCompile(`^\d{10}$`)

type CreateReservationRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

// SendReservationHandler books a table from the reservation form.
func SendReservationHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please fill the full reservation form!"})
			return
		}
		if !reservationPhonePattern.MatchString(req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number must be exactly 10 digits"})
			return
		}

		reservation := models.Reservation{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Date:      req.Date,
			Time:      req.Time,
		}
		if err := db.Create(&reservation).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create reservation"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success":     true,
			"message":     "Reservation created successfully!",
			"reservation": reservation,
		})
	}
}
