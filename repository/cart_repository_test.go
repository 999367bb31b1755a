package repository

import (
	"testing"

	"github.com/pcadcreative/foodexpress/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindRestaurantOnlyBindsUnboundOrSame(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	cart, err := repo.GetOrCreate(db, 1)
	require.NoError(t, err)
	require.Zero(t, cart.RestaurantID)

	ok, err := repo.BindRestaurant(db, cart.ID, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	// re-binding the same restaurant is a no-op win
	ok, err = repo.BindRestaurant(db, cart.ID, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.BindRestaurant(db, cart.ID, 20)
	require.NoError(t, err)
	assert.False(t, ok)

	var got entity.Cart
	require.NoError(t, db.First(&got, cart.ID).Error)
	assert.Equal(t, uint(10), got.RestaurantID)
}

func TestGetOrCreateReturnsExistingCart(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	first, err := repo.GetOrCreate(db, 1)
	require.NoError(t, err)
	second, err := repo.GetOrCreate(db, 1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Cart{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddOrMergeItemMergesDuplicateLines(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	cart, err := repo.GetOrCreate(db, 1)
	require.NoError(t, err)

	item := entity.FoodItem{Name: "Pizza", RestaurantID: 10, Price: 299, IsAvailable: true}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, repo.AddOrMergeItem(db, cart.ID, &item, 1))
	require.NoError(t, repo.AddOrMergeItem(db, cart.ID, &item, 2))

	var lines []entity.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.ID).Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Qty)
	assert.Equal(t, int64(299), lines[0].Price)
}

func TestRemoveItemLeavesSlotReusable(t *testing.T) {
	db := openTestDB(t)
	repo := NewCartRepository(db)

	cart, err := repo.GetOrCreate(db, 1)
	require.NoError(t, err)

	item := entity.FoodItem{Name: "Pizza", RestaurantID: 10, Price: 299, IsAvailable: true}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, repo.AddOrMergeItem(db, cart.ID, &item, 1))
	require.NoError(t, repo.RemoveItem(db, 1, item.ID))

	// the unique (cart, food) slot must be free again after removal
	require.NoError(t, repo.AddOrMergeItem(db, cart.ID, &item, 2))

	var lines []entity.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.ID).Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)
}
