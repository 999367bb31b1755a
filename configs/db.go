package configs

import (
	"github.com/pcadcreative/foodexpress/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	// TranslateError lets the order factory detect idempotency-key races
	// through gorm.ErrDuplicatedKey instead of driver-specific errors
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

// Migrate runs AutoMigrate for every entity. It takes the handle as an
// argument so tests can run it against their own in-memory databases.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&entity.User{},
		&entity.City{}, &entity.Restaurant{}, &entity.FoodItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.UserPreference{}, &entity.FavoriteRestaurant{}, &entity.FavoriteFood{},
	)
}

func SetupDatabase() {
	if err := Migrate(db); err != nil {
		panic(err)
	}
}
