package orderControllers

import (
	"errors"
	"net/http"

	"github.com/easoftwareGit/e-commerce/dberr"
	"github.com/easoftwareGit/e-commerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderItemInput carries the frozen unit price. The server never
// substitutes the live catalog price here; what was charged and what the
// catalog says now are deliberately decoupled.
type OrderItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	PriceUnit float64 `json:"price_unit" binding:"required,gt=0"`
}

func orderExists(db *gorm.DB, orderID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Order{}).Where("id = ?", orderID).Count(&count).Error
	return count > 0, err
}

// GET /orders/:id/items
func GetOrderItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.GetUint("orderId")

		ok, err := orderExists(db, orderID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var items []models.OrderItem
		if err := db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /orders/:id/items/:itemId
func GetOrderItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.GetUint("orderId")
		itemID := c.GetUint("itemId")

		var item models.OrderItem
		if err := db.Where("order_id = ?", orderID).First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// POST /orders/:id/items
func CreateOrderItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.GetUint("orderId")

		var input OrderItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := models.OrderItem{
			OrderID:   orderID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			PriceUnit: input.PriceUnit,
		}
		if err := db.Create(&item).Error; err != nil {
			err = dberr.Translate(err)
			switch {
			case errors.Is(err, dberr.ErrForeignKey):
				c.JSON(http.StatusConflict, gin.H{"error": "order_id or product_id does not exist"})
			case errors.Is(err, dberr.ErrNotNull):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Required value missing"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add order item"})
			}
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /orders/:id/items/:itemId
//
// Explicit correction path; the only legal way to change a frozen price.
func UpdateOrderItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.GetUint("orderId")
		itemID := c.GetUint("itemId")

		var input OrderItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.OrderItem
		if err := db.Where("order_id = ?", orderID).First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order item"})
			return
		}

		item.ProductID = input.ProductID
		item.Quantity = input.Quantity
		item.PriceUnit = input.PriceUnit
		if err := db.Save(&item).Error; err != nil {
			err = dberr.Translate(err)
			c.JSON(dberr.Status(err), gin.H{"error": "Failed to update order item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /orders/:id/items/:itemId
func DeleteOrderItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.GetUint("orderId")
		itemID := c.GetUint("itemId")

		result := db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}, itemID)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order item deleted"})
	}
}

// DELETE /orders/:id/allItems
func DeleteAllOrderItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.GetUint("orderId")

		ok, err := orderExists(db, orderID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		result := db.Where("order_id = ?", orderID).Delete(&models.OrderItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear order items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": result.RowsAffected})
	}
}
