package checkout

import (
	"math"

	"github.com/easoftwareGit/e-commerce/models"
	"gorm.io/gorm"
)

// PricedItem is one cart line with its unit price captured from the
// catalog. The same captured price feeds both the order total and the
// migrated order item, so the two can never disagree within a checkout.
type PricedItem struct {
	ProductID uint
	Quantity  int
	PriceUnit float64
}

// RoundPrice rounds to 2 decimal places, half away from zero. Prices are
// positive so this is round-half-up. Aggregating float64 cents carries a
// tiny bias; acceptable at catalog scale and how the store has always
// priced carts.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

// CartItemsWithPrices reads all line items for one cart joined with the
// live product price. This is the single price read of a checkout.
// A cart with no items returns an empty slice, not an error.
func CartItemsWithPrices(db *gorm.DB, cartID uint) ([]PricedItem, error) {
	var items []PricedItem
	err := db.Model(&models.CartItem{}).
		Select("cart_items.product_id, cart_items.quantity, products.price AS price_unit").
		Joins("INNER JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cartID).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CartTotal sums quantity × unit price over priced items, rounded to
// currency precision.
func CartTotal(items []PricedItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.PriceUnit
	}
	return RoundPrice(total)
}
