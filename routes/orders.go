package routes

import (
	orderControllers "github.com/easoftwareGit/e-commerce/controllers/order"
	"github.com/easoftwareGit/e-commerce/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers all "/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.GET("/", orderControllers.GetAllOrders(db))
		orders.POST("/", orderControllers.CreateOrder(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		orders.GET("/user/:userID",
			middleware.ValidateIDParam("userID", "userId"),
			orderControllers.GetUserOrders(db))

		byID := orders.Group("/:id", middleware.ValidateIDParam("id", "orderId"))
		{
			byID.GET("", orderControllers.GetOrder(db))
			byID.PUT("", orderControllers.UpdateOrder(db))
			byID.DELETE("", orderControllers.DeleteOrder(db))

			byID.GET("/items", orderControllers.GetOrderItems(db))
			byID.POST("/items", orderControllers.CreateOrderItem(db))
			byID.DELETE("/allItems", orderControllers.DeleteAllOrderItems(db))

			item := byID.Group("/items/:itemId", middleware.ValidateIDParam("itemId", "itemId"))
			{
				item.GET("", orderControllers.GetOrderItem(db))
				item.PUT("", orderControllers.UpdateOrderItem(db))
				item.DELETE("", orderControllers.DeleteOrderItem(db))
			}
		}
	}
}
