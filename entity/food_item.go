package entity

import (
	"gorm.io/gorm"
)

const (
	CategoryAppetizer  = "Appetizer"
	CategoryMainCourse = "Main Course"
	CategoryDessert    = "Dessert"
	CategoryBeverage   = "Beverage"
	CategorySnack      = "Snack"
)

type FoodItem struct {
	gorm.Model
	RestaurantID uint       `gorm:"not null;index:idx_food_items_rest_avail" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Category    string `gorm:"not null" json:"category"`
	Price       int64  `gorm:"not null" json:"price"`

	IsVegetarian bool   `gorm:"default:false" json:"isVegetarian"`
	IsAvailable  bool   `gorm:"default:true;index:idx_food_items_rest_avail" json:"isAvailable"`
	ImageURL     string `json:"imageUrl"`
}
