package models

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"unique;not null" json:"name"`
	ModelNumber string  `gorm:"column:model_number;unique;not null" json:"model_number"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
}
