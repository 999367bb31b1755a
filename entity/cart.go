package entity

import (
	"gorm.io/gorm"
)

// Cart is the per-user staging area for a prospective order.
// RestaurantID is 0 while the cart is empty; adding the first item binds
// it and every further item must come from the same restaurant.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint `json:"restaurantId"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	// kept in sync by SQL on every mutation: SUM(price*qty) over items
	TotalAmount int64 `json:"totalAmount"`
}
