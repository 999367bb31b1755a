package services

import (
	"sync"
	"testing"
	"time"

	"github.com/pcadcreative/foodexpress/entity"
	"github.com/pcadcreative/foodexpress/pkg/metrics"
	"github.com/pcadcreative/foodexpress/repository"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []preferenceUpdate
	seen  chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{seen: make(chan struct{}, 8)}
}

func (n *recordingNotifier) OrderPlaced(userID, restaurantID uint, orderedItems []string) {
	n.mu.Lock()
	n.calls = append(n.calls, preferenceUpdate{UserID: userID, RestaurantID: restaurantID, OrderedItems: orderedItems})
	n.mu.Unlock()
	n.seen <- struct{}{}
}

func (n *recordingNotifier) wait(t *testing.T) preferenceUpdate {
	t.Helper()
	select {
	case <-n.seen:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[len(n.calls)-1]
}

func newOrderService(t *testing.T) (*OrderService, *CartService, *recordingNotifier, *gorm.DB, fixture) {
	db := openTestDB(t)
	f := seedCatalog(t, db)
	cartRepo := repository.NewCartRepository(db)
	cartSvc := NewCartService(db, cartRepo, repository.NewCatalogRepository(db))
	notifier := newRecordingNotifier()
	orderSvc := NewOrderService(db, repository.NewOrderRepository(db), cartRepo, notifier)
	return orderSvc, cartSvc, notifier, db, f
}

var testAddr = entity.DeliveryAddress{Street: "1 Main St", City: "Testville"}

func TestPlaceOrderSnapshotsAndDrainsCart(t *testing.T) {
	orderSvc, cartSvc, notifier, _, f := newOrderService(t)

	_, err := cartSvc.AddItem(1, f.pizza.ID, 1)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(1, f.cola.ID, 2)
	require.NoError(t, err)

	order, created, err := orderSvc.PlaceOrder(1, testAddr, "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, f.pizzeria.ID, order.RestaurantID)
	assert.Equal(t, int64(399), order.TotalAmount)
	assert.Len(t, order.Items, 2)

	cart, err := cartSvc.Get(1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.RestaurantID)
	assert.Zero(t, cart.TotalAmount)

	call := notifier.wait(t)
	assert.Equal(t, uint(1), call.UserID)
	assert.Equal(t, f.pizzeria.ID, call.RestaurantID)
	assert.ElementsMatch(t, []string{"Pizza", "Coke"}, call.OrderedItems)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	orderSvc, _, _, _, _ := newOrderService(t)

	_, _, err := orderSvc.PlaceOrder(1, testAddr, "")
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, orderSvc.DB.Table("orders").Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderValidatesAddress(t *testing.T) {
	orderSvc, cartSvc, _, _, f := newOrderService(t)

	_, err := cartSvc.AddItem(1, f.pizza.ID, 1)
	require.NoError(t, err)

	_, _, err = orderSvc.PlaceOrder(1, entity.DeliveryAddress{City: "Testville"}, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, _, err = orderSvc.PlaceOrder(1, entity.DeliveryAddress{Street: "1 Main St"}, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// the failed checkout must not drain the cart
	cart, err := cartSvc.Get(1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestPlaceOrderIdempotencyKeyReplay(t *testing.T) {
	orderSvc, cartSvc, _, db, f := newOrderService(t)

	_, err := cartSvc.AddItem(1, f.pizza.ID, 1)
	require.NoError(t, err)

	first, created, err := orderSvc.PlaceOrder(1, testAddr, "key-123")
	require.NoError(t, err)
	assert.True(t, created)

	// refill the cart: the replay must ignore it and must not drain it
	_, err = cartSvc.AddItem(1, f.cola.ID, 1)
	require.NoError(t, err)

	second, created, err := orderSvc.PlaceOrder(1, testAddr, "key-123")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.TotalAmount, second.TotalAmount)

	var count int64
	require.NoError(t, db.Table("orders").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	cart, err := cartSvc.Get(1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestPlaceOrderReplayCountsAsReplayNotPlacement(t *testing.T) {
	orderSvc, cartSvc, _, _, f := newOrderService(t)

	_, err := cartSvc.AddItem(1, f.pizza.ID, 1)
	require.NoError(t, err)

	placedBefore := promtestutil.ToFloat64(metrics.OrdersPlaced)
	replaysBefore := promtestutil.ToFloat64(metrics.OrderReplays)

	_, created, err := orderSvc.PlaceOrder(1, testAddr, "key-metrics")
	require.NoError(t, err)
	require.True(t, created)
	assert.Equal(t, placedBefore+1, promtestutil.ToFloat64(metrics.OrdersPlaced))
	assert.Equal(t, replaysBefore, promtestutil.ToFloat64(metrics.OrderReplays))

	_, created, err = orderSvc.PlaceOrder(1, testAddr, "key-metrics")
	require.NoError(t, err)
	require.False(t, created)
	assert.Equal(t, placedBefore+1, promtestutil.ToFloat64(metrics.OrdersPlaced))
	assert.Equal(t, replaysBefore+1, promtestutil.ToFloat64(metrics.OrderReplays))
}

func TestPlaceOrderSnapshotSurvivesPriceChange(t *testing.T) {
	orderSvc, cartSvc, _, db, f := newOrderService(t)

	_, err := cartSvc.AddItem(1, f.pizza.ID, 1)
	require.NoError(t, err)

	// catalog price moves after the add; the cart and order keep the
	// price as it was at add time
	require.NoError(t, db.Model(&entity.FoodItem{}).Where("id = ?", f.pizza.ID).Update("price", 999).Error)

	order, _, err := orderSvc.PlaceOrder(1, testAddr, "")
	require.NoError(t, err)
	assert.Equal(t, int64(299), order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(299), order.Items[0].Price)
}

func TestGetForUserScopesToOwner(t *testing.T) {
	orderSvc, cartSvc, _, _, f := newOrderService(t)

	_, err := cartSvc.AddItem(1, f.pizza.ID, 1)
	require.NoError(t, err)
	order, _, err := orderSvc.PlaceOrder(1, testAddr, "")
	require.NoError(t, err)

	got, err := orderSvc.GetForUser(1, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = orderSvc.GetForUser(2, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListForUserPaginatesNewestFirst(t *testing.T) {
	orderSvc, cartSvc, _, db, f := newOrderService(t)

	var ids []uint
	for i := 0; i < 5; i++ {
		_, err := cartSvc.AddItem(1, f.pizza.ID, 1)
		require.NoError(t, err)
		order, _, err := orderSvc.PlaceOrder(1, testAddr, "")
		require.NoError(t, err)
		ids = append(ids, order.ID)
		// spread created_at so the sort is meaningful
		require.NoError(t, db.Exec("UPDATE orders SET created_at = ? WHERE id = ?",
			time.Now().Add(time.Duration(i-10)*time.Minute), order.ID).Error)
	}

	page, err := orderSvc.ListForUser(1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.Pages)
	require.Len(t, page.Orders, 2)
	assert.Equal(t, ids[4], page.Orders[0].ID)
	assert.Equal(t, ids[3], page.Orders[1].ID)

	last, err := orderSvc.ListForUser(1, 3, 2)
	require.NoError(t, err)
	require.Len(t, last.Orders, 1)
	assert.Equal(t, ids[0], last.Orders[0].ID)
}
