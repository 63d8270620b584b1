package models

import "time"

type Cart struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	Created  time.Time  `gorm:"column:created;not null" json:"created"`
	Modified time.Time  `gorm:"column:modified;not null" json:"modified"`
	UserID   uint       `gorm:"uniqueIndex;not null" json:"user_id"` // one cart per user
	Items    []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:RESTRICT" json:"items,omitempty"`
}

// CartItem stores no price. The price of a cart line is always resolved
// live from the product catalog, so a cart's value tracks price changes
// right up until checkout freezes it.
type CartItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	CartID    uint     `gorm:"index;not null" json:"cart_id"`
	ProductID uint     `gorm:"not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
	Quantity  int      `gorm:"not null;check:quantity > 0" json:"quantity"`
}

// CartItemDetail is the read shape for GET /carts/:id/items: a cart item
// joined with its product and the extended line total.
type CartItemDetail struct {
	ID          uint    `json:"id"`
	CartID      uint    `json:"cart_id"`
	ProductID   uint    `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Name        string  `json:"name"`
	ModelNumber string  `json:"model_number"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ItemTotal   float64 `json:"item_total"`
}
