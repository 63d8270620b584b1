package routes

import (
	productcontroller "github.com/easoftwareGit/e-commerce/controllers/product"
	"github.com/easoftwareGit/e-commerce/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.GET("/products/export", productcontroller.ExportProductsToExcel(db))
	}
}
