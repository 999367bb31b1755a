package services

import (
	"errors"
	"fmt"

	"github.com/pcadcreative/foodexpress/entity"
	"github.com/pcadcreative/foodexpress/pkg/metrics"
	"github.com/pcadcreative/foodexpress/repository"

	"gorm.io/gorm"
)

// Notifier is the preference-learning sink placeOrder informs after a
// successful checkout. Calls are best-effort; implementations must not
// block the caller for long and never report back into the order flow.
type Notifier interface {
	OrderPlaced(userID, restaurantID uint, orderedItems []string)
}

type OrderService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	CartRepo  *repository.CartRepository
	Notifier  Notifier
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository, n Notifier) *OrderService {
	return &OrderService{DB: db, OrderRepo: or, CartRepo: cr, Notifier: n}
}

// PlaceOrder converts the user's cart into an order exactly once per
// idempotency key. The snapshot write and the cart drain share one
// transaction; the unique key index arbitrates concurrent retries, and
// the loser of that race answers with the winner's order instead of an
// error. The second return value reports whether a new order was
// created (false on an idempotent replay).
func (s *OrderService) PlaceOrder(userID uint, addr entity.DeliveryAddress, idempotencyKey string) (*entity.Order, bool, error) {
	if idempotencyKey != "" {
		existing, err := s.OrderRepo.FindByIdempotencyKey(idempotencyKey)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			metrics.OrderReplays.Inc()
			return existing, false, nil
		}
	}

	if addr.Street == "" || addr.City == "" {
		return nil, false, fmt.Errorf("%w: valid delivery address is required", ErrInvalidArgument)
	}

	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetWithItems(tx, userID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		order = entity.Order{
			UserID:          userID,
			RestaurantID:    cart.RestaurantID,
			TotalAmount:     cart.TotalAmount,
			DeliveryAddress: addr,
			Status:          entity.StatusPending,
		}
		if idempotencyKey != "" {
			key := idempotencyKey
			order.IdempotencyKey = &key
		}
		for _, it := range cart.Items {
			order.Items = append(order.Items, entity.OrderItem{
				FoodItemID: it.FoodItemID,
				Name:       it.Name,
				Price:      it.Price,
				Qty:        it.Qty,
			})
		}
		if err := s.OrderRepo.Create(tx, &order); err != nil {
			return err
		}
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && idempotencyKey != "" {
			// a concurrent call with the same key won the insert; its
			// transaction drained the cart, ours rolled back untouched
			existing, ferr := s.OrderRepo.FindByIdempotencyKey(idempotencyKey)
			if ferr == nil && existing != nil {
				metrics.OrderReplays.Inc()
				return existing, false, nil
			}
		}
		return nil, false, err
	}

	metrics.OrdersPlaced.Inc()

	if s.Notifier != nil {
		names := make([]string, 0, len(order.Items))
		for _, it := range order.Items {
			names = append(names, it.Name)
		}
		go s.Notifier.OrderPlaced(userID, order.RestaurantID, names)
	}

	return &order, true, nil
}

// GetForUser returns the order only to its owner.
func (s *OrderService) GetForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.OrderRepo.GetForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	return o, nil
}

type OrderPage struct {
	Orders []entity.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Pages  int            `json:"pages"`
}

// ListForUser pages through the caller's order history, newest first.
func (s *OrderService) ListForUser(userID uint, page, limit int) (*OrderPage, error) {
	orders, total, err := s.OrderRepo.ListForUser(userID, page, limit)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &OrderPage{Orders: orders, Total: total, Page: page, Pages: pages}, nil
}
