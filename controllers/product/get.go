package productcontroller

import (
	"net/http"

	"github.com/ayushrskiaa/Restaurant-Reservation/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllProducts returns the full menu, newest first. Supports optional
// ?category= filtering for the menu tabs.
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Order("created_at DESC")

		if category := c.Query("category"); category != "" {
			if !models.ProductCategory(category).Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
				return
			}
			query = query.Where("category = ?", category)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}
