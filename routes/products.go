package routes

import (
	productcontroller "github.com/easoftwareGit/e-commerce/controllers/product"
	"github.com/easoftwareGit/e-commerce/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/products/*" endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("/", productcontroller.GetProducts(db))
		products.POST("/", productcontroller.CreateProduct(db))

		byID := products.Group("/:id", middleware.ValidateIDParam("id", "productId"))
		{
			byID.GET("", productcontroller.GetProductByID(db))
			byID.PUT("", productcontroller.UpdateProduct(db))
			byID.DELETE("", productcontroller.DeleteProduct(db))
		}
	}
}
