package repository

import (
	"errors"
	"time"

	"github.com/pcadcreative/foodexpress/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// Create persists the order together with its item snapshot. The unique
// index on idempotency_key makes the storage layer the arbiter of
// exactly-once creation; a race surfaces as gorm.ErrDuplicatedKey.
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// FindByIdempotencyKey returns the order carrying the key, or nil.
func (r *OrderRepository) FindByIdempotencyKey(key string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("idempotency_key = ?", key).Preload("Items").First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetForUser loads an order only if it belongs to the user.
func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).Preload("Items").First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForUser pages through the user's orders, newest first.
func (r *OrderRepository) ListForUser(userID uint, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int64
	if err := r.DB.Model(&entity.Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

// FindDueIDs returns the ids of orders sitting in status since before
// the cutoff, oldest first.
func (r *OrderRepository) FindDueIDs(status string, cutoff time.Time) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Order{}).
		Where("status = ? AND updated_at <= ?", status, cutoff).
		Order("updated_at").
		Pluck("id", &ids).Error
	return ids, err
}

// AdvanceStatus moves one order from one status to the next, stamping
// updated_at with the
// sweep's clock. The status and cutoff stay in the WHERE clause so the
// write is a compare-and-swap: if another sweep (or a cancellation) got
// there first, zero rows match and the order is not double-advanced.
func (r *OrderRepository) AdvanceStatus(orderID uint, from, to string, cutoff, now time.Time) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ? AND updated_at <= ?", orderID, from, cutoff).
		Updates(map[string]any{"status": to, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
