package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/easoftwareGit/e-commerce/dberr"
	"github.com/easoftwareGit/e-commerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	Created    time.Time `json:"created" binding:"required"`
	TotalPrice float64   `json:"total_price" binding:"required"`
	UserID     uint      `json:"user_id" binding:"required"`
}

type UpdateOrderRequest struct {
	Modified   time.Time `json:"modified" binding:"required"`
	Status     string    `json:"status" binding:"required"`
	TotalPrice float64   `json:"total_price" binding:"required"`
	UserID     uint      `json:"user_id" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case strings.ToLower(string(models.OrderStatusCreated)):
		return models.OrderStatusCreated, nil
	case strings.ToLower(string(models.OrderStatusShipped)):
		return models.OrderStatusShipped, nil
	case strings.ToLower(string(models.OrderStatusDelivered)):
		return models.OrderStatusDelivered, nil
	case strings.ToLower(string(models.OrderStatusCancelled)):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// -------- Handlers --------

// GET /orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.GetUint("orderId")

		var order models.Order
		if err := db.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/user/:userID
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var orders []models.Order
		if err := db.Where("user_id = ?", userID).Order("created DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// POST /orders
//
// Ad-hoc order insert; checkout is the normal path. Status starts
// "Created" and modified starts equal to created.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order := models.Order{
			Created:    req.Created,
			Modified:   req.Created,
			Status:     models.OrderStatusCreated,
			TotalPrice: req.TotalPrice,
			UserID:     req.UserID,
		}
		if err := db.Create(&order).Error; err != nil {
			err = dberr.Translate(err)
			switch {
			case errors.Is(err, dberr.ErrForeignKey):
				c.JSON(http.StatusConflict, gin.H{"error": "user_id does not exist"})
			case errors.Is(err, dberr.ErrNotNull):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Required value missing"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// PUT /orders/:id
//
// The created column is never updated here.
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.GetUint("orderId")

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		order.Modified = req.Modified
		order.Status = newStatus
		order.TotalPrice = req.TotalPrice
		order.UserID = req.UserID
		if err := db.Save(&order).Error; err != nil {
			err = dberr.Translate(err)
			c.JSON(dberr.Status(err), gin.H{"error": "Failed to update order"})
			return
		}

		BroadcastOrder(order)
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:id
//
// Blocked with 409 while order items still reference the order.
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.GetUint("orderId")

		var count int64
		if err := db.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check order items"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete - constraint error"})
			return
		}

		result := db.Delete(&models.Order{}, orderID)
		if result.Error != nil {
			err := dberr.Translate(result.Error)
			if errors.Is(err, dberr.ErrForeignKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete - constraint error"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}
