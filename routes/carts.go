package routes

import (
	cartControllers "github.com/easoftwareGit/e-commerce/controllers/cart"
	"github.com/easoftwareGit/e-commerce/controllers/checkout"
	orderControllers "github.com/easoftwareGit/e-commerce/controllers/order"
	"github.com/easoftwareGit/e-commerce/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all "/carts/*" endpoints, including the
// checkout entry point.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	carts := r.Group("/carts")
	{
		carts.GET("/", cartControllers.GetAllCarts(db))
		carts.POST("/", cartControllers.CreateCart(db))

		byID := carts.Group("/:id", middleware.ValidateIDParam("id", "cartId"))
		{
			byID.GET("", cartControllers.GetCart(db))
			byID.PUT("", cartControllers.UpdateCart(db))
			byID.DELETE("", cartControllers.DeleteCart(db))

			byID.GET("/items", cartControllers.GetCartItems(db))
			byID.POST("/items", cartControllers.CreateCartItem(db))
			byID.DELETE("/allItems", cartControllers.DeleteAllCartItems(db))

			item := byID.Group("/items/:itemId", middleware.ValidateIDParam("itemId", "itemId"))
			{
				item.GET("", cartControllers.GetCartItem(db))
				item.PUT("", cartControllers.UpdateCartItem(db))
				item.DELETE("", cartControllers.DeleteCartItem(db))
			}

			byID.POST("/checkout", checkout.CheckoutHandler(db, orderControllers.BroadcastOrder))
		}
	}
}
