package productcontroller

import (
	"net/http"

	"github.com/ayushrskiaa/Restaurant-Reservation/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Title    string  `json:"title" binding:"required"`
	Price    float64 `json:"price"`
	Offer    string  `json:"offer"`
	Image    string  `json:"image"`
	Category string  `json:"category" binding:"required"`
}

// AddProduct creates a menu item. The image field carries the URL returned
// by the upload endpoint.
func AddProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "title and category are required"})
			return
		}
		if req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "price must not be negative"})
			return
		}
		category := models.ProductCategory(req.Category)
		if !category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}

		product := models.Product{
			Title:    req.Title,
			Price:    req.Price,
			Offer:    req.Offer,
			Image:    req.Image,
			Category: category,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
	}
}
