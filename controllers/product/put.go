package productcontroller

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayushrskiaa/Restaurant-Reservation/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProductRequest struct {
	Title    *string  `json:"title"`
	Price    *float64 `json:"price"`
	Offer    *string  `json:"offer"`
	Image    *string  `json:"image"`
	Category *string  `json:"category"`
}

// UpdateProduct patches a menu item. When the image URL changes, the old
// file is removed from the uploads directory.
func UpdateProduct(db *gorm.DB, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch product"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
			return
		}

		oldImage := product.Image
		if req.Title != nil {
			product.Title = *req.Title
		}
		if req.Price != nil {
			if *req.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "price must not be negative"})
				return
			}
			product.Price = *req.Price
		}
		if req.Offer != nil {
			product.Offer = *req.Offer
		}
		if req.Image != nil {
			product.Image = *req.Image
		}
		if req.Category != nil {
			category := models.ProductCategory(*req.Category)
			if !category.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
				return
			}
			product.Category = category
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
			return
		}

		if req.Image != nil && oldImage != "" && oldImage != product.Image {
			removeUploadedImage(uploadsDir, oldImage)
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}

// removeUploadedImage deletes a previously uploaded file given its public
// /uploads URL. Paths escaping the uploads directory are ignored.
func removeUploadedImage(uploadsDir, imageURL string) {
	name := strings.TrimPrefix(imageURL, "/uploads/")
	if name == imageURL || strings.Contains(name, "..") {
		return
	}
	if err := os.Remove(filepath.Join(uploadsDir, name)); err != nil && !os.IsNotExist(err) {
		log.Printf("❌ Failed to remove old image %s: %v", name, err)
	}
}
