package repository

import (
	"strings"

	"github.com/pcadcreative/foodexpress/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

func (r *CatalogRepository) ListCities() ([]entity.City, error) {
	var cities []entity.City
	err := r.DB.Where("is_active = ?", true).Order("name").Find(&cities).Error
	return cities, err
}

type RestaurantFilter struct {
	CityID  uint
	Cuisine string
	Search  string
}

func (r *CatalogRepository) ListRestaurants(f RestaurantFilter) ([]entity.Restaurant, error) {
	db := r.DB.Where("is_active = ?", true)
	if f.CityID != 0 {
		db = db.Where("city_id = ?", f.CityID)
	}
	if f.Cuisine != "" {
		db = db.Where("cuisine LIKE ?", "%"+f.Cuisine+"%")
	}
	if f.Search != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	var out []entity.Restaurant
	err := db.Order("rating DESC, id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("City").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

type MenuFilter struct {
	Category       string
	VegetarianOnly bool
}

// ListMenu returns the available items of one restaurant.
func (r *CatalogRepository) ListMenu(restaurantID uint, f MenuFilter) ([]entity.FoodItem, error) {
	db := r.DB.Where("restaurant_id = ? AND is_available = ?", restaurantID, true)
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if f.VegetarianOnly {
		db = db.Where("is_vegetarian = ?", true)
	}
	var items []entity.FoodItem
	err := db.Order("category, name").Find(&items).Error
	return items, err
}

// GetFoodItem is the catalog lookup the cart depends on.
func (r *CatalogRepository) GetFoodItem(id uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
