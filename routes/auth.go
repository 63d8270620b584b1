package routes

import (
	"github.com/easoftwareGit/e-commerce/auth"
	userControllers "github.com/easoftwareGit/e-commerce/controllers/user"
	"github.com/easoftwareGit/e-commerce/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
		authGroup.GET("/user", middleware.ValidateToken, userControllers.GetCurrentUser(db))
	}
}
