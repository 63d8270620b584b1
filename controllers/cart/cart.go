package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/easoftwareGit/e-commerce/dberr"
	"github.com/easoftwareGit/e-commerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartInput struct {
	Created  time.Time `json:"created" binding:"required"`
	Modified time.Time `json:"modified" binding:"required"`
	UserID   uint      `json:"user_id" binding:"required"`
}

// GET /carts
func GetAllCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var carts []models.Cart
		if err := db.Find(&carts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}

// GET /carts/:id
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetUint("cartId")

		var cart models.Cart
		if err := db.First(&cart, cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /carts
func CreateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart := models.Cart{
			Created:  input.Created,
			Modified: input.Modified,
			UserID:   input.UserID,
		}
		if err := db.Create(&cart).Error; err != nil {
			err = dberr.Translate(err)
			switch {
			case errors.Is(err, dberr.ErrUnique):
				c.JSON(http.StatusConflict, gin.H{"error": "user_id already has a cart"})
			case errors.Is(err, dberr.ErrForeignKey):
				c.JSON(http.StatusConflict, gin.H{"error": "user_id does not exist"})
			case errors.Is(err, dberr.ErrNotNull):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Required value missing"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			}
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// PUT /carts/:id
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetUint("cartId")

		var input CartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.First(&cart, cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		cart.Created = input.Created
		cart.Modified = input.Modified
		cart.UserID = input.UserID
		if err := db.Save(&cart).Error; err != nil {
			err = dberr.Translate(err)
			c.JSON(dberr.Status(err), gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /carts/:id
//
// Rejected with 409 while line items still reference the cart; the
// items must be deleted first.
func DeleteCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetUint("cartId")

		var count int64
		if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check cart items"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete - cart still has items"})
			return
		}

		result := db.Delete(&models.Cart{}, cartID)
		if result.Error != nil {
			err := dberr.Translate(result.Error)
			if errors.Is(err, dberr.ErrForeignKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete - constraint error"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart deleted"})
	}
}
