package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isaacjdv/futbolapp-backend/entity"
	"github.com/Isaacjdv/futbolapp-backend/repository"
	"github.com/Isaacjdv/futbolapp-backend/services"
)

func TestCartAddIncrementsQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCartService(repository.NewCartRepository(db))
	user := createUser(t, db, "cart@example.com")

	row, err := svc.Add(user.ID, &services.AddToCartIn{
		ProductID: "store-7", Quantity: 2, Name: "Camiseta Argentina", Price: 89.99,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, row.Quantity)

	row, err = svc.Add(user.ID, &services.AddToCartIn{ProductID: "store-7", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, row.Quantity)

	// still a single line, with the add-time snapshot intact
	items, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Camiseta Argentina", items[0].ProductName)
	assert.InDelta(t, 89.99, items[0].UnitPrice, 0.001)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCartService(repository.NewCartRepository(db))
	user := createUser(t, db, "cart@example.com")

	row, err := svc.Add(user.ID, &services.AddToCartIn{ProductID: "store-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, row.Quantity)
}

func TestCartAddMissingProduct(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCartService(repository.NewCartRepository(db))
	user := createUser(t, db, "cart@example.com")

	_, err := svc.Add(user.ID, &services.AddToCartIn{ProductID: "  "})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestCartRemoveIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCartService(repository.NewCartRepository(db))
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")

	row, err := svc.Add(owner.ID, &services.AddToCartIn{ProductID: "store-3"})
	require.NoError(t, err)

	// another user cannot delete the row by guessing its id
	err = svc.Remove(other.ID, row.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.Remove(owner.ID, row.ID))
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCartLinesArePerUser(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCartService(repository.NewCartRepository(db))
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	_, err := svc.Add(alice.ID, &services.AddToCartIn{ProductID: "store-1", Quantity: 2})
	require.NoError(t, err)
	_, err = svc.Add(bob.ID, &services.AddToCartIn{ProductID: "store-1", Quantity: 4})
	require.NoError(t, err)

	aliceItems, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceItems, 1)
	assert.Equal(t, 2, aliceItems[0].Quantity)

	bobItems, err := svc.List(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobItems, 1)
	assert.Equal(t, 4, bobItems[0].Quantity)
}
