package repository

import (
	"errors"

	"github.com/pcadcreative/foodexpress/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreate returns the user's cart, persisting an empty one on first
// access so reads never fail.
func (r *CartRepository) GetOrCreate(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// concurrent first access created it; use that row
				err = tx.Where("user_id = ?", userID).First(&c).Error
			}
			if err != nil {
				return nil, err
			}
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetWithItems loads the cart and its lines, creating the cart lazily.
func (r *CartRepository) GetWithItems(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	c, err := r.GetOrCreate(tx, userID)
	if err != nil {
		return nil, err
	}
	if err := tx.Where("cart_id = ?", c.ID).Order("id").Find(&c.Items).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// BindRestaurant points the cart at a restaurant. The WHERE clause is
// the compare-and-swap: it only matches an unbound cart or one already
// bound to the same restaurant, so a concurrent add from another
// restaurant cannot sneak past. Returns false when the cart is bound
// elsewhere.
func (r *CartRepository) BindRestaurant(tx *gorm.DB, cartID, restaurantID uint) (bool, error) {
	res := tx.Model(&entity.Cart{}).
		Where("id = ? AND restaurant_id IN (0, ?)", cartID, restaurantID).
		Update("restaurant_id", restaurantID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// AddOrMergeItem adds a line or, if the item is already in the cart,
// sums the quantities. The merge is a single UPDATE so two concurrent
// adds of the same item both land.
func (r *CartRepository) AddOrMergeItem(tx *gorm.DB, cartID uint, item *entity.FoodItem, qty int) error {
	res := tx.Model(&entity.CartItem{}).
		Where("cart_id = ? AND food_item_id = ?", cartID, item.ID).
		Update("qty", gorm.Expr("qty + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	line := entity.CartItem{
		CartID:     cartID,
		FoodItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Qty:        qty,
	}
	if err := tx.Create(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the insert race; fold into the winner's line
			return tx.Model(&entity.CartItem{}).
				Where("cart_id = ? AND food_item_id = ?", cartID, item.ID).
				Update("qty", gorm.Expr("qty + ?", qty)).Error
		}
		return err
	}
	return nil
}

// SetItemQty overwrites the quantity of an existing line. Returns false
// when the user has no such line.
func (r *CartRepository) SetItemQty(tx *gorm.DB, userID, foodItemID uint, qty int) (bool, error) {
	res := tx.Exec(`
		UPDATE cart_items SET qty = ?
		 WHERE food_item_id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, foodItemID, userID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// RemoveItem drops a line; missing lines are not an error (removal is
// idempotent).
func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, foodItemID uint) error {
	return tx.
		Where("food_item_id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", foodItemID, userID).
		Delete(&entity.CartItem{}).Error
}

// UnbindIfEmpty clears the restaurant binding once the last line is gone.
func (r *CartRepository) UnbindIfEmpty(tx *gorm.DB, userID uint) error {
	return tx.Exec(`
		UPDATE carts SET restaurant_id = 0
		 WHERE user_id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_items ci WHERE ci.cart_id = carts.id)
	`, userID).Error
}

// RecomputeTotal re-derives total_amount from the lines inside the same
// transaction, so the invariant total == SUM(price*qty) holds after
// every write.
func (r *CartRepository) RecomputeTotal(tx *gorm.DB, cartID uint) error {
	return tx.Exec(`
		UPDATE carts
		   SET total_amount = (
			SELECT COALESCE(SUM(price * qty), 0) FROM cart_items ci
			 WHERE ci.cart_id = carts.id
		   )
		 WHERE id = ?
	`, cartID).Error
}

// Clear empties the cart: lines gone, binding cleared, total zero.
func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
		Updates(map[string]any{"restaurant_id": 0, "total_amount": 0}).Error
}
