package checkout

import (
	"errors"
	"net/http"

	"github.com/easoftwareGit/e-commerce/dberr"
	"github.com/easoftwareGit/e-commerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateOrderFromCart inserts the order row for a checkout. By store
// convention the cart's created date becomes both created and modified
// of the new order. Returns the persisted order including its id.
func CreateOrderFromCart(db *gorm.DB, cart models.Cart, total float64) (models.Order, error) {
	order := models.Order{
		Created:    cart.Created,
		Modified:   cart.Created,
		Status:     models.OrderStatusCreated,
		TotalPrice: total,
		UserID:     cart.UserID,
	}
	if err := db.Create(&order).Error; err != nil {
		return models.Order{}, dberr.Translate(err)
	}
	return order, nil
}

// CreateOrderItems copies priced cart lines into order items owned by
// orderID. PriceUnit comes from the caller's earlier catalog read and is
// frozen here; this function never consults the products table.
func CreateOrderItems(db *gorm.DB, orderID uint, items []PricedItem) ([]models.OrderItem, error) {
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItem := models.OrderItem{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			PriceUnit: item.PriceUnit,
		}
		if err := db.Create(&orderItem).Error; err != nil {
			return nil, dberr.Translate(err)
		}
		orderItems = append(orderItems, orderItem)
	}
	return orderItems, nil
}

// DeleteCartItems removes every line item for one cart and reports how
// many rows went away. Zero is a valid result, not a failure.
func DeleteCartItems(db *gorm.DB, cartID uint) (int64, error) {
	result := db.Where("cart_id = ?", cartID).Delete(&models.CartItem{})
	if result.Error != nil {
		return 0, dberr.Translate(result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteCart removes the cart row itself. Line items must already be
// gone: the schema rejects deleting a cart that items still reference.
func DeleteCart(db *gorm.DB, cartID uint) error {
	result := db.Delete(&models.Cart{}, cartID)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// CheckoutCart converts a cart into an order: price the cart, create the
// order, migrate the line items with frozen prices, then dispose of the
// cart (items first, then the row). All five steps run in one
// transaction, and the cart row is locked up front so two checkouts of
// the same cart serialize instead of double-charging.
//
// An empty cart checks out to a zero-total order with no items.
func CheckoutCart(db *gorm.DB, cartID uint) (models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		locked := tx
		if tx.Dialector.Name() == "postgres" { // sqlite has no FOR UPDATE
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var cart models.Cart
		if err := locked.First(&cart, cartID).Error; err != nil {
			return dberr.Translate(err)
		}

		items, err := CartItemsWithPrices(tx, cart.ID)
		if err != nil {
			return dberr.Translate(err)
		}
		total := CartTotal(items)

		order, err = CreateOrderFromCart(tx, cart, total)
		if err != nil {
			return err
		}
		if _, err = CreateOrderItems(tx, order.ID, items); err != nil {
			return err
		}
		if _, err = DeleteCartItems(tx, cart.ID); err != nil {
			return err
		}
		return DeleteCart(tx, cart.ID)
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// CheckoutHandler is POST /carts/:id/checkout.
func CheckoutHandler(db *gorm.DB, notify func(models.Order)) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetUint("cartId")

		order, err := CheckoutCart(db, cartID)
		if err != nil {
			status := dberr.Status(err)
			msg := "Checkout failed"
			switch {
			case errors.Is(err, dberr.ErrNotFound):
				msg = "Cart not found"
			case errors.Is(err, dberr.ErrForeignKey):
				msg = "Cart references missing data"
			case errors.Is(err, dberr.ErrNotNull):
				msg = "Required value missing"
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}

		if notify != nil {
			notify(order)
		}
		c.JSON(http.StatusCreated, order)
	}
}
