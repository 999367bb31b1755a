package services

import (
	"testing"
	"time"

	"github.com/pcadcreative/foodexpress/entity"
	"github.com/pcadcreative/foodexpress/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUpdater(t *testing.T) (*StatusUpdater, *gorm.DB) {
	db := openTestDB(t)
	return NewStatusUpdater(repository.NewOrderRepository(db), 50*time.Millisecond), db
}

func createOrderWithStatus(t *testing.T, db *gorm.DB, status string) entity.Order {
	t.Helper()
	o := entity.Order{
		UserID:          1,
		RestaurantID:    1,
		TotalAmount:     100,
		DeliveryAddress: entity.DeliveryAddress{Street: "1 Main St", City: "Testville"},
		Status:          status,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func statusOf(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()
	var status string
	require.NoError(t, db.Table("orders").Where("id = ?", id).Pluck("status", &status).Error)
	return status
}

func updatedAtOf(t *testing.T, db *gorm.DB, id uint) time.Time {
	t.Helper()
	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	return o.UpdatedAt
}

func TestSweepAdvancesAfterDwell(t *testing.T) {
	u, db := newUpdater(t)
	o := createOrderWithStatus(t, db, entity.StatusPending)
	before := updatedAtOf(t, db, o.ID)

	// one minute in: too early
	assert.Zero(t, u.Sweep(time.Now().Add(time.Minute)))
	assert.Equal(t, entity.StatusPending, statusOf(t, db, o.ID))

	// past the two-minute dwell: one hop, updated_at stamped
	assert.Equal(t, 1, u.Sweep(time.Now().Add(2*time.Minute+time.Second)))
	assert.Equal(t, entity.StatusConfirmed, statusOf(t, db, o.ID))
	assert.True(t, updatedAtOf(t, db, o.ID).After(before))
}

func TestSweepAdvancesAtMostOneHop(t *testing.T) {
	u, db := newUpdater(t)
	o := createOrderWithStatus(t, db, entity.StatusPending)

	// far beyond every dwell period combined; still only one hop,
	// because the advance resets updated_at
	u.Sweep(time.Now().Add(2 * time.Hour))
	assert.Equal(t, entity.StatusConfirmed, statusOf(t, db, o.ID))

	u.Sweep(time.Now().Add(4 * time.Hour))
	assert.Equal(t, entity.StatusPreparing, statusOf(t, db, o.ID))

	u.Sweep(time.Now().Add(6 * time.Hour))
	assert.Equal(t, entity.StatusOutForDelivery, statusOf(t, db, o.ID))

	u.Sweep(time.Now().Add(8 * time.Hour))
	assert.Equal(t, entity.StatusDelivered, statusOf(t, db, o.ID))

	// DELIVERED is terminal
	assert.Zero(t, u.Sweep(time.Now().Add(10*time.Hour)))
	assert.Equal(t, entity.StatusDelivered, statusOf(t, db, o.ID))
}

func TestSweepRespectsEachDwell(t *testing.T) {
	u, db := newUpdater(t)
	o := createOrderWithStatus(t, db, entity.StatusConfirmed)

	// CONFIRMED dwells three minutes
	u.Sweep(time.Now().Add(2 * time.Minute))
	assert.Equal(t, entity.StatusConfirmed, statusOf(t, db, o.ID))
	u.Sweep(time.Now().Add(3*time.Minute + time.Second))
	assert.Equal(t, entity.StatusPreparing, statusOf(t, db, o.ID))

	// PREPARING dwells ten
	u.Sweep(time.Now().Add(9 * time.Minute))
	assert.Equal(t, entity.StatusPreparing, statusOf(t, db, o.ID))
	u.Sweep(time.Now().Add(14 * time.Minute))
	assert.Equal(t, entity.StatusOutForDelivery, statusOf(t, db, o.ID))
}

func TestSweepNeverTouchesCancelled(t *testing.T) {
	u, db := newUpdater(t)
	o := createOrderWithStatus(t, db, entity.StatusCancelled)

	assert.Zero(t, u.Sweep(time.Now().Add(24*time.Hour)))
	assert.Equal(t, entity.StatusCancelled, statusOf(t, db, o.ID))
}

func TestSweepHandlesOrdersIndependently(t *testing.T) {
	u, db := newUpdater(t)
	young := createOrderWithStatus(t, db, entity.StatusPending)
	old := createOrderWithStatus(t, db, entity.StatusPending)
	require.NoError(t, db.Exec("UPDATE orders SET updated_at = ? WHERE id = ?",
		time.Now().Add(-5*time.Minute), old.ID).Error)

	assert.Equal(t, 1, u.Sweep(time.Now()))
	assert.Equal(t, entity.StatusConfirmed, statusOf(t, db, old.ID))
	assert.Equal(t, entity.StatusPending, statusOf(t, db, young.ID))
}

func TestFreshOrderNotEligibleInSameTick(t *testing.T) {
	u, db := newUpdater(t)
	o := createOrderWithStatus(t, db, entity.StatusPending)

	// the scheduler and the order factory never contend: a fresh order
	// carries updated_at=now and no dwell has elapsed
	assert.Zero(t, u.Sweep(time.Now()))
	assert.Equal(t, entity.StatusPending, statusOf(t, db, o.ID))
}

func TestStartRunsImmediatelyAndStopWaits(t *testing.T) {
	u, db := newUpdater(t)
	o := createOrderWithStatus(t, db, entity.StatusPending)
	require.NoError(t, db.Exec("UPDATE orders SET updated_at = ? WHERE id = ?",
		time.Now().Add(-3*time.Minute), o.ID).Error)

	u.Start()
	require.Eventually(t, func() bool {
		return statusOf(t, db, o.ID) == entity.StatusConfirmed
	}, 2*time.Second, 10*time.Millisecond)

	// Stop must return (the in-flight sweep finishes) and the loop must
	// not advance anything afterwards
	u.Stop()
	require.NoError(t, db.Exec("UPDATE orders SET updated_at = ? WHERE id = ?",
		time.Now().Add(-time.Hour), o.ID).Error)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, entity.StatusConfirmed, statusOf(t, db, o.ID))
}
