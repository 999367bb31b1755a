package configs

import (
	"log"

	"github.com/pcadcreative/foodexpress/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the bootstrap admin account once.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog loads a small browsable catalog so a fresh database is
// usable immediately. FirstOrCreate keeps it idempotent across restarts.
func SeedCatalog() error {
	var mumbai, bangalore entity.City
	if err := db.FirstOrCreate(&mumbai, entity.City{Name: "Mumbai", State: "Maharashtra"}).Error; err != nil {
		return err
	}
	if err := db.FirstOrCreate(&bangalore, entity.City{Name: "Bangalore", State: "Karnataka"}).Error; err != nil {
		return err
	}

	var pizzaPalace, spiceGarden entity.Restaurant
	if err := db.Where(entity.Restaurant{Name: "Pizza Palace", CityID: mumbai.ID}).
		Attrs(entity.Restaurant{
			Description:     "Wood-fired pizzas and more",
			Cuisine:         "Italian",
			Rating:          4.3,
			DeliveryTimeMin: 30,
			Street:          "12 Hill Road",
			Area:            "Bandra",
			IsActive:        true,
		}).FirstOrCreate(&pizzaPalace).Error; err != nil {
		return err
	}
	if err := db.Where(entity.Restaurant{Name: "Spice Garden", CityID: bangalore.ID}).
		Attrs(entity.Restaurant{
			Description:     "North Indian classics",
			Cuisine:         "Indian",
			Rating:          4.1,
			DeliveryTimeMin: 35,
			Street:          "88 MG Road",
			Area:            "Indiranagar",
			IsActive:        true,
		}).FirstOrCreate(&spiceGarden).Error; err != nil {
		return err
	}

	items := []entity.FoodItem{
		{RestaurantID: pizzaPalace.ID, Name: "Margherita Pizza", Category: entity.CategoryMainCourse, Price: 29900, IsVegetarian: true},
		{RestaurantID: pizzaPalace.ID, Name: "Garlic Bread", Category: entity.CategoryAppetizer, Price: 12900, IsVegetarian: true},
		{RestaurantID: pizzaPalace.ID, Name: "Cola", Category: entity.CategoryBeverage, Price: 5000, IsVegetarian: true},
		{RestaurantID: spiceGarden.ID, Name: "Butter Chicken", Category: entity.CategoryMainCourse, Price: 34900},
		{RestaurantID: spiceGarden.ID, Name: "Paneer Tikka", Category: entity.CategoryAppetizer, Price: 24900, IsVegetarian: true},
		{RestaurantID: spiceGarden.ID, Name: "Mango Lassi", Category: entity.CategoryBeverage, Price: 9900, IsVegetarian: true},
	}
	for _, it := range items {
		var existing entity.FoodItem
		if err := db.Where(entity.FoodItem{RestaurantID: it.RestaurantID, Name: it.Name}).
			Attrs(it).FirstOrCreate(&existing).Error; err != nil {
			return err
		}
	}
	return nil
}
