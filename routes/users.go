package routes

import (
	userControllers "github.com/easoftwareGit/e-commerce/controllers/user"
	"github.com/easoftwareGit/e-commerce/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/users/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.GET("/", userControllers.GetAllUsers(db))

		byID := users.Group("/:id", middleware.ValidateIDParam("id", "userId"))
		{
			byID.GET("", userControllers.GetUser(db))
			byID.PUT("", userControllers.UpdateUser(db))
			byID.DELETE("", userControllers.DeleteUser(db))
		}
	}
}
