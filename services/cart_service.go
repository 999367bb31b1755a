package services

import (
	"errors"
	"fmt"

	"github.com/pcadcreative/foodexpress/entity"
	"github.com/pcadcreative/foodexpress/repository"

	"gorm.io/gorm"
)

// CartService enforces the cart invariants: at most one cart per user,
// every line from the same restaurant, total always SUM(price*qty).
type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catr *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catr}
}

// AddItem puts qty of the food item into the user's cart, snapshotting
// the catalog name and price. Quantities of an existing line are
// summed, not replaced.
func (s *CartService) AddItem(userID, foodItemID uint, qty int) (*entity.Cart, error) {
	if foodItemID == 0 || qty < 1 {
		return nil, fmt.Errorf("%w: valid foodItemId and quantity are required", ErrInvalidArgument)
	}

	item, err := s.CatalogRepo.GetFoodItem(foodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food item %d", ErrNotFound, foodItemID)
		}
		return nil, err
	}
	if !item.IsAvailable {
		return nil, ErrUnavailable
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}
		bound, err := s.CartRepo.BindRestaurant(tx, cart.ID, item.RestaurantID)
		if err != nil {
			return err
		}
		if !bound {
			return ErrRestaurantConflict
		}
		if err := s.CartRepo.AddOrMergeItem(tx, cart.ID, item, qty); err != nil {
			return err
		}
		return s.CartRepo.RecomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// SetItemQuantity overwrites a line's quantity. Zero removes the line;
// removing the last line unbinds the restaurant.
func (s *CartService) SetItemQuantity(userID, foodItemID uint, qty int) (*entity.Cart, error) {
	if foodItemID == 0 || qty < 0 {
		return nil, fmt.Errorf("%w: valid foodItemId and quantity are required", ErrInvalidArgument)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}
		if qty == 0 {
			if err := s.CartRepo.RemoveItem(tx, userID, foodItemID); err != nil {
				return err
			}
		} else {
			ok, err := s.CartRepo.SetItemQty(tx, userID, foodItemID, qty)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: item not in cart", ErrNotFound)
			}
		}
		if err := s.CartRepo.UnbindIfEmpty(tx, userID); err != nil {
			return err
		}
		return s.CartRepo.RecomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Get returns the cart, creating an empty one on first access.
func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	return s.CartRepo.GetWithItems(s.DB, userID)
}

// Clear empties the cart and resets binding and total.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}
