package entity

import (
	"time"

	"gorm.io/gorm"
)

type DeliveryAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Order is the immutable record of a checkout. Items and TotalAmount are
// copied from the cart at creation time and never re-read from the
// catalog, so the amounts stay historically accurate even if menu prices
// change later. After creation only Status and UpdatedAt move.
type Order struct {
	// gorm.Model unrolled so CreatedAt can join the listing index
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index:idx_orders_user_created"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	UserID uint `gorm:"not null;index:idx_orders_user_created,priority:1" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	TotalAmount int64 `gorm:"not null" json:"totalAmount"`

	DeliveryAddress DeliveryAddress `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryAddress"`

	Status string `gorm:"not null;default:PENDING;index" json:"status"`

	// client-supplied; unique when present, sparse otherwise
	IdempotencyKey *string `gorm:"uniqueIndex" json:"idempotencyKey,omitempty"`
}
