package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	FoodItemID uint `json:"foodItemId"`

	// snapshot carried over from the cart line
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"quantity"`
}
