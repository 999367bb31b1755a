package entity

import (
	"time"

	"gorm.io/gorm"
)

// UserPreference is the per-user taste profile the recommendation side
// learns from placed orders.
type UserPreference struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`

	FavoriteRestaurants []FavoriteRestaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"favoriteRestaurants"`
	FavoriteFoods       []FavoriteFood       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"favoriteFoods"`

	TotalOrders int `gorm:"default:0" json:"totalOrders"`
}

type FavoriteRestaurant struct {
	gorm.Model
	UserPreferenceID uint `gorm:"not null;uniqueIndex:idx_fav_rest_pref_rest" json:"-"`

	RestaurantID  uint      `gorm:"not null;uniqueIndex:idx_fav_rest_pref_rest" json:"restaurantId"`
	OrderCount    int       `gorm:"default:1" json:"orderCount"`
	LastOrderedAt time.Time `json:"lastOrderedAt"`
}

type FavoriteFood struct {
	gorm.Model
	UserPreferenceID uint `gorm:"not null;uniqueIndex:idx_fav_food_pref_name" json:"-"`

	FoodName   string `gorm:"not null;uniqueIndex:idx_fav_food_pref_name" json:"foodName"`
	OrderCount int    `gorm:"default:1" json:"orderCount"`
}
