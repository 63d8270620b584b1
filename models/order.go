package models

import "time"

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "Created"   // set at checkout, never by the client
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Created    time.Time   `gorm:"column:created;not null" json:"created"`
	Modified   time.Time   `gorm:"column:modified;not null" json:"modified"`
	Status     OrderStatus `gorm:"type:VARCHAR(20);not null" json:"status"`
	TotalPrice float64     `gorm:"column:total_price;not null" json:"total_price"`
	UserID     uint        `gorm:"index;not null" json:"user_id"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT" json:"items,omitempty"`
}

// OrderItem freezes PriceUnit at creation time. Later catalog price
// changes must never reach back into an existing order.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"index;not null" json:"order_id"`
	ProductID uint     `gorm:"not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
	Quantity  int      `gorm:"not null;check:quantity > 0" json:"quantity"`
	PriceUnit float64  `gorm:"column:price_unit;not null" json:"price_unit"`
}
