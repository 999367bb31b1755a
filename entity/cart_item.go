package entity

import (
	"time"
)

// CartItem is hard-deleted (no gorm soft delete): a removed line must
// free its slot in the (cart_id, food_item_id) unique index so the item
// can be added again.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	CartID uint `gorm:"not null;uniqueIndex:idx_cart_items_cart_food" json:"cartId"`
	Cart   Cart `json:"-"`

	FoodItemID uint     `gorm:"not null;uniqueIndex:idx_cart_items_cart_food" json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`

	// name/price snapshot taken from the catalog at add time
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `gorm:"not null" json:"quantity"`
}
