package repository

import (
	"errors"
	"time"

	"github.com/pcadcreative/foodexpress/entity"

	"gorm.io/gorm"
)

type PreferenceRepository struct{ DB *gorm.DB }

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// GetWithFavorites loads the full taste profile, or nil when the user
// has never ordered.
func (r *PreferenceRepository) GetWithFavorites(userID uint) (*entity.UserPreference, error) {
	var p entity.UserPreference
	err := r.DB.Where("user_id = ?", userID).
		Preload("FavoriteRestaurants").
		Preload("FavoriteFoods").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// RecordOrder folds one placed order into the profile: restaurant and
// food counters go up, TotalOrders goes up, all in one transaction.
func (r *PreferenceRepository) RecordOrder(userID, restaurantID uint, orderedItems []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var pref entity.UserPreference
		err := tx.Where("user_id = ?", userID).First(&pref).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pref = entity.UserPreference{UserID: userID}
			if err := tx.Create(&pref).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		now := time.Now()
		res := tx.Model(&entity.FavoriteRestaurant{}).
			Where("user_preference_id = ? AND restaurant_id = ?", pref.ID, restaurantID).
			Updates(map[string]any{
				"order_count":     gorm.Expr("order_count + 1"),
				"last_ordered_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			fav := entity.FavoriteRestaurant{
				UserPreferenceID: pref.ID,
				RestaurantID:     restaurantID,
				OrderCount:       1,
				LastOrderedAt:    now,
			}
			if err := tx.Create(&fav).Error; err != nil {
				return err
			}
		}

		for _, name := range orderedItems {
			res := tx.Model(&entity.FavoriteFood{}).
				Where("user_preference_id = ? AND food_name = ?", pref.ID, name).
				Update("order_count", gorm.Expr("order_count + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				food := entity.FavoriteFood{
					UserPreferenceID: pref.ID,
					FoodName:         name,
					OrderCount:       1,
				}
				if err := tx.Create(&food).Error; err != nil {
					return err
				}
			}
		}

		return tx.Model(&entity.UserPreference{}).Where("id = ?", pref.ID).
			Update("total_orders", gorm.Expr("total_orders + 1")).Error
	})
}
