package cartControllers

import (
	"errors"
	"net/http"

	"github.com/easoftwareGit/e-commerce/dberr"
	"github.com/easoftwareGit/e-commerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

func cartExists(db *gorm.DB, cartID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Cart{}).Where("id = ?", cartID).Count(&count).Error
	return count > 0, err
}

// GET /carts/:id/items
//
// Items come back joined with their product: name, model number,
// description, live price, and the extended line total.
func GetCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetUint("cartId")

		ok, err := cartExists(db, cartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		var items []models.CartItemDetail
		err = db.Model(&models.CartItem{}).
			Select(`cart_items.id, cart_items.cart_id, cart_items.product_id, cart_items.quantity,
				products.name, products.model_number, products.description, products.price,
				(cart_items.quantity * products.price) AS item_total`).
			Joins("INNER JOIN products ON products.id = cart_items.product_id").
			Where("cart_items.cart_id = ?", cartID).
			Scan(&items).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart items"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No items in cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /carts/:id/items/:itemId
func GetCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetUint("cartId")
		itemID := c.GetUint("itemId")

		var item models.CartItem
		if err := db.Where("cart_id = ?", cartID).First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// POST /carts/:id/items
func CreateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetUint("cartId")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := models.CartItem{
			CartID:    cartID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}
		if err := db.Create(&item).Error; err != nil {
			err = dberr.Translate(err)
			switch {
			case errors.Is(err, dberr.ErrForeignKey):
				c.JSON(http.StatusConflict, gin.H{"error": "cart_id or product_id does not exist"})
			case errors.Is(err, dberr.ErrNotNull):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Required value missing"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			}
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /carts/:id/items/:itemId
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetUint("cartId")
		itemID := c.GetUint("itemId")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ?", cartID).First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.ProductID = input.ProductID
		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			err = dberr.Translate(err)
			c.JSON(dberr.Status(err), gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /carts/:id/items/:itemId
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetUint("cartId")
		itemID := c.GetUint("itemId")

		result := db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}, itemID)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /carts/:id/allItems
//
// Clearing an already empty cart is fine; the count just comes back 0.
func DeleteAllCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetUint("cartId")

		ok, err := cartExists(db, cartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		result := db.Where("cart_id = ?", cartID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": result.RowsAffected})
	}
}
