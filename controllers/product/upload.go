package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImage stores a menu image under the uploads directory and returns
// its public URL. The filename is randomized to avoid collisions.
func UploadImage(uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		switch ext {
		case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unsupported image format"})
			return
		}

		saveDir := filepath.Join(uploadsDir, "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create upload folder"})
			return
		}

		filename := uuid.NewString() + ext
		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"url":     fmt.Sprintf("/uploads/products/%s", filename),
		})
	}
}
