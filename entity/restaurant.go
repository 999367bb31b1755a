package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	CityID uint `gorm:"index:idx_restaurants_city_active" json:"cityId"`
	City   City `json:"-"`

	Street  string `json:"street"`
	Area    string `json:"area"`
	ZipCode string `json:"zipCode"`

	// comma separated, e.g. "Italian,Chinese"
	Cuisine string `json:"cuisine"`

	Rating          float64 `gorm:"default:0" json:"rating"`
	DeliveryTimeMin int     `gorm:"default:30" json:"deliveryTimeMin"`
	IsActive        bool    `gorm:"default:true;index:idx_restaurants_city_active" json:"isActive"`
	ImageURL        string  `json:"imageUrl"`

	FoodItems []FoodItem `json:"-"`
	Orders    []Order    `json:"-"`
}
