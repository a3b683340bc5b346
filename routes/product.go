package routes

import (
	productcontroller "github.com/ayushrskiaa/Restaurant-Reservation/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB, uploadsDir string) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetAllProducts(db))
		products.POST("", productcontroller.AddProduct(db))
		products.PUT("/:id", productcontroller.UpdateProduct(db, uploadsDir))
		products.DELETE("/:id", productcontroller.DeleteProduct(db, uploadsDir))
		products.POST("/upload", productcontroller.UploadImage(uploadsDir))
		products.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
	}
}
