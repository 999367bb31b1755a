package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pcadcreative/foodexpress/configs"
	"github.com/pcadcreative/foodexpress/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own named in-memory database. The
// shared cache keeps every pooled connection on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

type fixture struct {
	pizzeria entity.Restaurant
	curry    entity.Restaurant
	pizza    entity.FoodItem
	cola     entity.FoodItem
	biryani  entity.FoodItem
	offMenu  entity.FoodItem
}

func seedCatalog(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	city := entity.City{Name: "Testville", State: "TS", IsActive: true}
	require.NoError(t, db.Create(&city).Error)

	f := fixture{
		pizzeria: entity.Restaurant{Name: "Pizzeria", CityID: city.ID, IsActive: true},
		curry:    entity.Restaurant{Name: "Curry House", CityID: city.ID, IsActive: true},
	}
	require.NoError(t, db.Create(&f.pizzeria).Error)
	require.NoError(t, db.Create(&f.curry).Error)

	f.pizza = entity.FoodItem{RestaurantID: f.pizzeria.ID, Name: "Pizza", Category: entity.CategoryMainCourse, Price: 299, IsAvailable: true}
	f.cola = entity.FoodItem{RestaurantID: f.pizzeria.ID, Name: "Coke", Category: entity.CategoryBeverage, Price: 50, IsAvailable: true}
	f.biryani = entity.FoodItem{RestaurantID: f.curry.ID, Name: "Biryani", Category: entity.CategoryMainCourse, Price: 199, IsAvailable: true}
	f.offMenu = entity.FoodItem{RestaurantID: f.pizzeria.ID, Name: "Seasonal Special", Category: entity.CategoryMainCourse, Price: 499, IsAvailable: false}
	for _, item := range []*entity.FoodItem{&f.pizza, &f.cola, &f.biryani, &f.offMenu} {
		require.NoError(t, db.Create(item).Error)
	}
	// the false must be written explicitly: gorm treats the zero value
	// as unset when the column carries a default
	require.NoError(t, db.Model(&f.offMenu).Update("is_available", false).Error)
	f.offMenu.IsAvailable = false
	return f
}
